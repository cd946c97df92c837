package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// feedback application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and
	// the credential policy.
	App App `envPrefix:"APP_"`

	// Survey holds settings of the survey flows: the staff access code and
	// the customer daily submission quota.
	Survey Survey `envPrefix:"SURVEY_"`

	// Storage holds configuration for the submission archive database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Directory holds settings of the external pharmacy directory API.
	Directory Directory `envPrefix:"DIRECTORY_"`

	// Workers holds configuration for background janitor workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and the credential policy.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT session
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session
	// token. It is validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance. Defaults to 7 days.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordMinLength is the minimum accepted password length.
	// Env: APP_PASSWORD_MIN_LENGTH
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`

	// MaxFailedAttempts is the number of consecutive failed logins after
	// which an account is locked.
	// Env: APP_MAX_FAILED_ATTEMPTS
	MaxFailedAttempts int `env:"MAX_FAILED_ATTEMPTS"`

	// AccountLockTime is how long an account stays locked once the failed
	// attempt limit is reached.
	// Env: APP_ACCOUNT_LOCK_TIME
	AccountLockTime time.Duration `env:"ACCOUNT_LOCK_TIME"`

	// ResetTokenDuration specifies how long a password-reset token remains
	// consumable after issuance.
	// Env: APP_RESET_TOKEN_DURATION
	ResetTokenDuration time.Duration `env:"RESET_TOKEN_DURATION"`
}

// Survey holds settings governing the survey flows.
type Survey struct {
	// StaffAccessCode is the shared secret gating entry into the staff
	// survey flow.
	// Env: SURVEY_STAFF_ACCESS_CODE
	StaffAccessCode string `env:"STAFF_ACCESS_CODE"`

	// DailySubmissionLimit is the maximum number of customer surveys one
	// client may complete per calendar day. Staff surveys are uncapped.
	// Env: SURVEY_DAILY_SUBMISSION_LIMIT
	DailySubmissionLimit int `env:"DAILY_SUBMISSION_LIMIT"`
}

// Storage groups the configuration for the submission archive.
type Storage struct {
	// DB holds the archive database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the submission archive database.
type DB struct {
	// DSN selects and configures the archive backend: a
	// "postgres://..." URI opens PostgreSQL via pgx; any other value is
	// treated as an SQLite file path (":memory:" for an in-process
	// throwaway archive).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Directory holds settings for the external pharmacy directory API client.
type Directory struct {
	// BaseURL is the root URL of the directory API
	// (e.g. "https://api.pharmaciefficace.com").
	// Env: DIRECTORY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound directory request.
	// Env: DIRECTORY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background janitor workers.
type Workers struct {
	// JanitorInterval is how often expired reset tokens and stale daily
	// counters are pruned.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// Defaults applied by [StructuredConfig.applyDefaults] for fields left unset
// by every configuration source.
const (
	DefaultTokenDuration        = 7 * 24 * time.Hour
	DefaultPasswordMinLength    = 8
	DefaultMaxFailedAttempts    = 5
	DefaultAccountLockTime      = 15 * time.Minute
	DefaultResetTokenDuration   = time.Hour
	DefaultStaffAccessCode      = "PHARMA2024"
	DefaultDailySubmissionLimit = 2
	DefaultHTTPAddress          = "localhost:8080"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultDirectoryTimeout     = 15 * time.Second
	DefaultJanitorInterval      = 10 * time.Minute
	DefaultDSN                  = ":memory:"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source fall back to the Default* constants.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills every unset field with its Default* constant.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordMinLength == 0 {
		cfg.App.PasswordMinLength = DefaultPasswordMinLength
	}
	if cfg.App.MaxFailedAttempts == 0 {
		cfg.App.MaxFailedAttempts = DefaultMaxFailedAttempts
	}
	if cfg.App.AccountLockTime == 0 {
		cfg.App.AccountLockTime = DefaultAccountLockTime
	}
	if cfg.App.ResetTokenDuration == 0 {
		cfg.App.ResetTokenDuration = DefaultResetTokenDuration
	}
	if cfg.Survey.StaffAccessCode == "" {
		cfg.Survey.StaffAccessCode = DefaultStaffAccessCode
	}
	if cfg.Survey.DailySubmissionLimit == 0 {
		cfg.Survey.DailySubmissionLimit = DefaultDailySubmissionLimit
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Directory.RequestTimeout == 0 {
		cfg.Directory.RequestTimeout = DefaultDirectoryTimeout
	}
	if cfg.Workers.JanitorInterval == 0 {
		cfg.Workers.JanitorInterval = DefaultJanitorInterval
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
}
