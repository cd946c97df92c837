package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pharmaciefficace/feedback/internal/config"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/store"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/internal/validators"
	"github.com/pharmaciefficace/feedback/models"
)

// passwordResetService is the concrete implementation of
// PasswordResetService.
type passwordResetService struct {
	userRepository  store.UserRepository
	tokenRepository store.ResetTokenRepository

	// tokenDuration is the validity window of a freshly minted token.
	tokenDuration time.Duration

	// policy is the password-strength policy applied to the new password.
	policy validators.PasswordPolicy

	// uuid mints the opaque token values.
	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

// NewPasswordResetService constructs a PasswordResetService with the reset
// window and password policy taken from cfg.
func NewPasswordResetService(userRepository store.UserRepository, tokenRepository store.ResetTokenRepository, cfg config.App, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		tokenDuration:   cfg.ResetTokenDuration,
		policy:          validators.NewPasswordPolicy(cfg.PasswordMinLength),
		uuid:            utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// RequestReset mints a reset token for a known, unlocked account.
//
// A malformed address fails with ErrInvalidEmail and a locked account with
// ErrAccountLocked. An unknown email returns ("", nil): the caller responds
// success either way, so the endpoint cannot enumerate accounts. Minting a
// new token does not invalidate outstanding ones.
func (p *passwordResetService) RequestReset(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	email = validators.NormalizeEmail(email)
	if !validators.ValidateEmail(email) {
		return "", ErrInvalidEmail
	}

	user, err := p.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// unknown email is indistinguishable from a successful request
			return "", nil
		}
		log.Err(err).Str("email", email).Msg("user lookup failed")
		return "", fmt.Errorf("user lookup failed: %w", err)
	}

	if user.IsLockedAt(time.Now()) {
		return "", ErrAccountLocked
	}

	token := models.ResetToken{
		Token:     p.uuid.Generate(),
		Email:     email,
		ExpiresAt: time.Now().Add(p.tokenDuration),
	}
	if err := p.tokenRepository.Save(ctx, token); err != nil {
		log.Err(err).Str("email", email).Msg("saving reset token failed")
		return "", fmt.Errorf("saving reset token failed: %w", err)
	}

	log.Info().Str("email", email).Time("expires_at", token.ExpiresAt).Msg("reset token minted")

	return token.Token, nil
}

// VerifyResetToken checks that a matching, unexpired token exists for the
// email.
func (p *passwordResetService) VerifyResetToken(ctx context.Context, token, email string) error {
	email = validators.NormalizeEmail(email)

	if _, err := p.tokenRepository.Find(ctx, token, email); err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	return nil
}

// ResetPassword rewrites the account's password hash and consumes the token.
//
// The token is re-verified first; the new password must satisfy the
// strength policy (the policy's sentinel errors pass through for precise
// user feedback). The token is deleted on success, so a second call with
// the same token fails with ErrResetTokenInvalid.
func (p *passwordResetService) ResetPassword(ctx context.Context, token, email, newPassword string) error {
	log := logger.FromContext(ctx)

	email = validators.NormalizeEmail(email)
	if err := p.VerifyResetToken(ctx, token, email); err != nil {
		return err
	}

	if err := p.policy.Validate(newPassword); err != nil {
		return err
	}

	user, err := p.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrResetTokenInvalid
		}
		log.Err(err).Str("email", email).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing new password failed: %w", err)
	}

	user.PasswordHash = string(hash)
	user.FailedAttempts = 0
	user.LockedUntil = nil
	if _, err := p.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("storing new password failed")
		return fmt.Errorf("storing new password failed: %w", err)
	}

	if err := p.tokenRepository.Delete(ctx, token); err != nil {
		log.Err(err).Msg("consuming reset token failed")
		return fmt.Errorf("consuming reset token failed: %w", err)
	}

	return nil
}
