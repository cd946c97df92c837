package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pharmaciefficace/feedback/internal/config"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/store"
	"github.com/pharmaciefficace/feedback/internal/validators"
	"github.com/pharmaciefficace/feedback/models"
)

// accountService is the concrete implementation of AccountService.
// Role-based authorization is enforced by the HTTP layer; the service
// assumes the caller is already entitled to the operation, except for the
// self-delete rule which is an invariant of the service itself.
type accountService struct {
	userRepository store.UserRepository
	policy         validators.PasswordPolicy
	logger         *logger.Logger
}

// NewAccountService constructs an AccountService with the password policy
// taken from cfg.
func NewAccountService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		policy:         validators.NewPasswordPolicy(cfg.PasswordMinLength),
		logger:         logger,
	}
}

func (s *accountService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of req to the account. An email
// change is normalised and validated for format and uniqueness.
func (s *accountService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if req.Email != nil {
		email := validators.NormalizeEmail(*req.Email)
		if !validators.ValidateEmail(email) {
			return models.User{}, ErrInvalidEmail
		}
		user.Email = email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyUsed
		}
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// ChangePassword verifies the current password before storing the new one.
// The new password must satisfy the strength policy.
func (s *accountService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}

	if err := s.policy.Validate(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing new password failed: %w", err)
	}

	user.PasswordHash = string(hash)
	if _, err := s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("storing new password failed")
		return fmt.Errorf("storing new password failed: %w", err)
	}

	return nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// CreateUser registers a new account. The email is validated for format,
// the password for strength and the role against the known set.
func (s *accountService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := validators.NormalizeEmail(req.Email)
	if !validators.ValidateEmail(email) {
		return models.User{}, ErrInvalidEmail
	}

	switch req.Role {
	case models.RoleAdmin, models.RolePharmacien, models.RoleUser:
	default:
		return models.User{}, ErrInvalidRole
	}

	if err := s.policy.Validate(req.Password); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyUsed
		}
		log.Err(err).Str("email", email).Msg("user creation failed")
		return models.User{}, fmt.Errorf("user creation failed: %w", err)
	}

	return created, nil
}

// DeleteUser removes an account. The acting admin cannot delete itself.
func (s *accountService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	log := logger.FromContext(ctx)

	if actorID == targetID {
		return ErrSelfDeleteForbidden
	}

	if err := s.userRepository.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Int64("user_id", targetID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
