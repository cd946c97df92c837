// Package validators provides input validation for credential material:
// email addresses and password strength.
//
// Validators are stateless once constructed and safe for concurrent use.
// Services inject them at construction time so the policy (e.g. minimum
// password length) stays configuration-driven.
package validators

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern is intentionally permissive: it rejects obvious garbage
// (missing @, spaces, missing TLD) without trying to implement RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail returns the canonical form of an email address:
// surrounding whitespace stripped and all characters lowercased.
// Every store lookup and uniqueness check operates on normalized emails.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail reports whether the given address is syntactically
// acceptable after normalization.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(NormalizeEmail(email))
}

// PasswordPolicy validates password strength.
//
// A password is accepted when it is at least MinLength characters long and
// contains at least one lowercase letter, one uppercase letter, one digit,
// and one character that is neither a letter nor a digit.
type PasswordPolicy struct {
	// MinLength is the minimum accepted password length in runes.
	MinLength int
}

// NewPasswordPolicy constructs a PasswordPolicy with the given minimum
// length. Non-positive values fall back to 8.
func NewPasswordPolicy(minLength int) PasswordPolicy {
	if minLength < 1 {
		minLength = 8
	}
	return PasswordPolicy{MinLength: minLength}
}

// Validate checks password against the policy. It returns nil when the
// password is acceptable, or the first violated rule's sentinel error.
func (p PasswordPolicy) Validate(password string) error {
	if len([]rune(password)) < p.MinLength {
		return ErrPasswordTooShort
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasLower:
		return ErrPasswordNoLowercase
	case !hasUpper:
		return ErrPasswordNoUppercase
	case !hasDigit:
		return ErrPasswordNoDigit
	case !hasSpecial:
		return ErrPasswordNoSpecial
	}

	return nil
}
