package store

import (
	"context"
	"time"

	"github.com/pharmaciefficace/feedback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access layer for user accounts.
//
// Emails are compared in normalized (trimmed, lowercase) form; callers are
// expected to normalize before lookup.
type UserRepository interface {
	// CreateUser persists a new account and returns it with a
	// repository-assigned UserID and CreatedAt.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account with the given normalized
	// email. Returns ErrNoUserWasFound when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the account with the given identifier.
	// Returns ErrNoUserWasFound when absent.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser replaces the stored record matching user.UserID.
	// Returns ErrNoUserWasFound when absent and ErrEmailAlreadyExists when
	// the new email collides with another account.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// ListUsers returns every account ordered by UserID.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes the account with the given identifier.
	// Returns ErrNoUserWasFound when absent.
	DeleteUser(ctx context.Context, userID int64) error
}

// ResetTokenRepository holds outstanding password-reset tokens.
// Multiple tokens may exist per email; deletion is by token value.
type ResetTokenRepository interface {
	// Save stores a freshly minted token.
	Save(ctx context.Context, token models.ResetToken) error

	// Find returns the token matching the (token, email) pair if it exists
	// and has not expired. Returns ErrResetTokenNotFound otherwise.
	Find(ctx context.Context, token, email string) (models.ResetToken, error)

	// Delete removes the token with the given value. Deleting an absent
	// token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every token whose expiry is at or before now
	// and returns the number of tokens removed.
	DeleteExpired(ctx context.Context, now time.Time) int
}

// SubmissionCounter tracks completed customer surveys per client per
// calendar day. Keys are (clientKey, day); the day component is truncated
// to a date.
//
// Methods take no context: the counter backs the survey runner's
// synchronous state transitions and never blocks.
type SubmissionCounter interface {
	// Count returns the number of recorded submissions for the key and day.
	Count(clientKey string, day time.Time) int

	// Increment adds one submission for the key and day and returns the
	// new count.
	Increment(clientKey string, day time.Time) int

	// PruneBefore removes every entry older than the given day and returns
	// the number of entries removed.
	PruneBefore(day time.Time) int
}

// FavoriteRepository stores each user's favorite pharmacy identifiers.
type FavoriteRepository interface {
	// List returns the user's favorite pharmacy IDs in insertion order.
	List(ctx context.Context, userID int64) ([]string, error)

	// Add records a pharmacy as favorite. Adding a duplicate is a no-op.
	Add(ctx context.Context, userID int64, pharmacyID string) error

	// Remove deletes a pharmacy from the user's favorites. Removing an
	// absent entry is not an error.
	Remove(ctx context.Context, userID int64, pharmacyID string) error
}

// SubmissionRepository is the archive of completed survey submissions.
type SubmissionRepository interface {
	// Save persists an archived submission.
	Save(ctx context.Context, submission models.Submission) (models.Submission, error)

	// FindByID retrieves one archived submission.
	// Returns ErrSubmissionNotFound when absent.
	FindByID(ctx context.Context, id string) (models.Submission, error)

	// Search returns archived submissions matching the filter, newest
	// first.
	Search(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error)
}
