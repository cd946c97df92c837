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

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes, maintains the failed-attempt lockout
// window and manages the JWT session-token lifecycle.
type authService struct {
	// userRepository is the data-access layer for account lookups and the
	// login-time counter updates.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// maxFailedAttempts is the number of consecutive failed logins that
	// starts the lockout window.
	maxFailedAttempts int

	// accountLockTime is the length of the lockout window.
	accountLockTime time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		maxFailedAttempts: cfg.MaxFailedAttempts,
		accountLockTime:   cfg.AccountLockTime,
		logger:            logger,
	}
}

// Login authenticates an account by email and password.
//
// The email is normalised (trimmed, lowercased) before lookup. An unknown
// email and a wrong password are indistinguishable to the caller: both
// return ErrInvalidCredentials. A wrong password increments the account's
// failed-attempt counter; reaching the configured maximum sets the lockout
// timestamp. A successful login resets the counter, stamps LastLogin and
// issues a session token.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		log.Error().Msg("login with empty email or password")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user lookup failed")
		return models.User{}, models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	now := time.Now()
	if user.IsLockedAt(now) {
		log.Warn().Int64("user_id", user.UserID).Time("locked_until", *user.LockedUntil).Msg("login on locked account")
		return models.User{}, models.Token{}, ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		a.registerFailedAttempt(ctx, user, now)
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	user.FailedAttempts = 0
	user.LockedUntil = nil
	user.LastLogin = &now
	user, err = a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("resetting login counters failed")
		return models.User{}, models.Token{}, fmt.Errorf("resetting login counters failed: %w", err)
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// registerFailedAttempt advances the account's failed-login counter and
// starts the lockout window when the maximum is reached. Persistence
// failures are logged and swallowed: the caller still reports
// ErrInvalidCredentials.
func (a *authService) registerFailedAttempt(ctx context.Context, user models.User, now time.Time) {
	log := logger.FromContext(ctx)

	user.FailedAttempts++
	if user.FailedAttempts >= a.maxFailedAttempts {
		lockedUntil := now.Add(a.accountLockTime)
		user.LockedUntil = &lockedUntil
		user.FailedAttempts = 0
		log.Warn().Int64("user_id", user.UserID).Time("locked_until", lockedUntil).Msg("account locked after repeated failures")
	}

	if _, err := a.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("recording failed login attempt failed")
	}
}

// Authenticate resolves a raw token string to its account.
//
// It fails closed: a malformed or expired token, an unknown subject and a
// locked account all refuse authentication.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Int64("user_id", token.UserID).Msg("token subject lookup failed")
		return models.User{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	if user.IsLockedAt(time.Now()) {
		return models.User{}, ErrAccountLocked
	}

	return user, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
