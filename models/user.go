package models

import "time"

// Roles assignable to a user account. Stored as plain strings so that they
// survive JSON round-trips and database scans without conversion.
const (
	RoleAdmin      = "admin"
	RolePharmacien = "pharmacien"
	RoleUser       = "user"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. Always stored trimmed and
	// lowercase; lookups must normalize before comparing.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// Role determines the operations the account may perform.
	// One of RoleAdmin, RolePharmacien, RoleUser.
	Role string `json:"role"`

	// FailedAttempts counts consecutive failed login attempts.
	// Reset to zero on successful login.
	FailedAttempts int `json:"-"`

	// LockedUntil, when set and in the future, marks the account as locked.
	LockedUntil *time.Time `json:"-"`

	// LastLogin is the timestamp of the most recent successful login.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsLockedAt reports whether the account is locked at the given instant.
func (u User) IsLockedAt(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

// Sanitized returns a copy of the user with all credential material removed,
// suitable for inclusion in API responses.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.FailedAttempts = 0
	u.LockedUntil = nil
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
