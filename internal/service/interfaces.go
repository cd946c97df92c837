package service

import (
	"context"
	"time"

	"github.com/pharmaciefficace/feedback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles credential verification and session-token lifecycle.
type AuthService interface {
	// Login verifies the email/password pair and issues a session token.
	// Returns ErrInvalidCredentials on an unknown email or wrong password
	// and ErrAccountLocked while the lockout window is active. Reaching
	// the configured failed-attempt maximum starts the lockout window.
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)

	// Authenticate resolves a raw token string to its account.
	// Returns ErrTokenIsExpiredOrInvalid on any parse or lookup failure
	// and ErrAccountLocked for a locked account.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw token string.
	// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PasswordResetService drives the request/verify/reset flow.
type PasswordResetService interface {
	// RequestReset mints a one-hour reset token for a known, unlocked
	// email. An unknown email returns no error and no token so that the
	// endpoint cannot be used to enumerate accounts. The minted token is
	// returned for delivery; it is never exposed in the HTTP response.
	RequestReset(ctx context.Context, email string) (string, error)

	// VerifyResetToken checks that a matching, unexpired token exists for
	// the email. Returns ErrResetTokenInvalid otherwise.
	VerifyResetToken(ctx context.Context, token, email string) error

	// ResetPassword re-verifies the token, enforces the password policy,
	// rewrites the account's hash and consumes the token. A consumed token
	// fails a second ResetPassword with ErrResetTokenInvalid.
	ResetPassword(ctx context.Context, token, email, newPassword string) error
}

// AccountService covers profile self-service and admin user management.
type AccountService interface {
	// GetUser returns the account with the given id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies the non-nil fields of req to the account.
	// An email change is validated for format and uniqueness.
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)

	// ChangePassword verifies the current password and stores the new one
	// after a policy check.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error

	// ListUsers returns every account. Caller must be admin-authorized.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser registers a new account with a policy-checked password.
	// Caller must be admin-authorized.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// DeleteUser removes an account. Deleting the acting account fails
	// with ErrSelfDeleteForbidden. Caller must be admin-authorized.
	DeleteUser(ctx context.Context, actorID, targetID int64) error
}

// SurveySessionService owns the in-memory survey sessions and serializes
// access to each session's runner.
type SurveySessionService interface {
	// StartSession opens a new customer or staff session and returns its view.
	StartSession(ctx context.Context, flow, clientKey string) (SessionView, error)

	// GetSession returns the current view of a session.
	GetSession(ctx context.Context, sessionID string) (SessionView, error)

	// SelectPharmacy records the evaluated pharmacy (customer flow).
	SelectPharmacy(ctx context.Context, sessionID, pharmacyID string) (SessionView, error)

	// EnterAccessCode checks the staff access code. A wrong code is not an
	// error; the returned view carries the visible error message.
	EnterAccessCode(ctx context.Context, sessionID, code string) (SessionView, error)

	// SelectSurveyType picks the staff questionnaire.
	SelectSurveyType(ctx context.Context, sessionID, surveyType string) (SessionView, error)

	// RecordAnswer upserts one answer.
	RecordAnswer(ctx context.Context, sessionID string, req models.RecordAnswerRequest) (SessionView, error)

	// Next advances the session; on the last question it submits.
	Next(ctx context.Context, sessionID string) (SessionView, error)

	// Previous moves the session back one question.
	Previous(ctx context.Context, sessionID string) (SessionView, error)

	// PruneIdle drops sessions untouched for longer than maxIdle and
	// returns the number removed. Called by the janitor worker.
	PruneIdle(maxIdle time.Duration) int
}

// SubmissionService archives and retrieves completed submissions.
type SubmissionService interface {
	// Archive persists a completed payload and returns the stored record.
	Archive(ctx context.Context, payload models.SubmissionPayload) (models.Submission, error)

	// List searches the archive. Caller must be admin-authorized.
	List(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error)

	// Get returns one archived submission. Caller must be admin-authorized.
	Get(ctx context.Context, id string) (models.Submission, error)
}

// DirectoryService exposes the external pharmacy directory plus the
// per-user favorites kept locally.
type DirectoryService interface {
	Departements(ctx context.Context) ([]models.Departement, error)
	Communes(ctx context.Context, departementID string) ([]models.Commune, error)
	Arrondissements(ctx context.Context, communeID string) ([]models.Arrondissement, error)
	Villages(ctx context.Context, arrondissementID string) ([]models.Village, error)
	Pharmacies(ctx context.Context, page int, departementID, communeID string) (models.PharmacyPage, error)
	Pharmacy(ctx context.Context, pharmacyID string) (models.Pharmacy, error)
	SearchPharmacies(ctx context.Context, req models.PharmacySearchRequest) ([]models.Pharmacy, error)
	CheckEmail(ctx context.Context, email string) (bool, error)

	// CreatePharmacy registers a pharmacy in the directory.
	// Caller must be admin-authorized.
	CreatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error)

	// UpdatePharmacy patches a directory record. Caller must be
	// admin-authorized.
	UpdatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error)

	// Favorites lists the user's favorite pharmacy ids.
	Favorites(ctx context.Context, userID int64) ([]string, error)

	// AddFavorite marks a pharmacy as favorite; duplicates are no-ops.
	AddFavorite(ctx context.Context, userID int64, pharmacyID string) error

	// RemoveFavorite unmarks a pharmacy; absent entries are no-ops.
	RemoveFavorite(ctx context.Context, userID int64, pharmacyID string) error
}
