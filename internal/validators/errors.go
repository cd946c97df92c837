package validators

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email address")

	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordNoLowercase = errors.New("password must contain a lowercase letter")
	ErrPasswordNoUppercase = errors.New("password must contain an uppercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain a digit")
	ErrPasswordNoSpecial   = errors.New("password must contain a special character")
)

// IsWeakPassword reports whether err is any password-policy violation.
// Callers that do not care which rule failed use this instead of matching
// each sentinel individually.
func IsWeakPassword(err error) bool {
	return errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordNoLowercase) ||
		errors.Is(err, ErrPasswordNoUppercase) ||
		errors.Is(err, ErrPasswordNoDigit) ||
		errors.Is(err, ErrPasswordNoSpecial)
}
