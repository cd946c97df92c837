package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account is locked")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmailAlreadyUsed = errors.New("email is already in use")

	ErrResetTokenInvalid = errors.New("reset token is invalid or expired")

	ErrUnauthorized        = errors.New("operation not permitted")
	ErrSelfDeleteForbidden = errors.New("own account cannot be deleted")
	ErrInvalidRole         = errors.New("unknown role")

	ErrSessionNotFound = errors.New("survey session not found")
	ErrUnknownFlow     = errors.New("unknown survey flow")

	ErrSubmissionNotFound = errors.New("submission not found")
)
