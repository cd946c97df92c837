package models

import "time"

// ResetToken is a single-use, time-boxed credential authorizing one password
// change for a specific email address.
//
// Tokens are minted on a password-reset request, matched on verification,
// and deleted when the reset completes. An email may have several
// outstanding tokens at once; minting a new token does not invalidate
// previous ones.
type ResetToken struct {
	// Token is the opaque random value handed to the user.
	Token string `json:"token"`

	// Email is the account email the token was issued for.
	// Always stored trimmed and lowercase.
	Email string `json:"email"`

	// ExpiresAt is the instant after which the token is no longer
	// consumable. Expired tokens are pruned by a background janitor.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpiredAt reports whether the token is past its validity window at the
// given instant.
func (t ResetToken) IsExpiredAt(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
