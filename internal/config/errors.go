package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSurveyConfigs indicates invalid survey settings
	// (for example, empty staff access code or a non-positive quota).
	ErrInvalidSurveyConfigs = errors.New("invalid survey configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty submission archive DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
