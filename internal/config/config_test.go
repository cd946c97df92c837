package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_DURATION", "168h")
	t.Setenv("SURVEY_STAFF_ACCESS_CODE", "CODE42")
	t.Setenv("SURVEY_DAILY_SUBMISSION_LIMIT", "3")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("STORAGE_DB_DATABASE_URI", "archive.db")
	t.Setenv("DIRECTORY_BASE_URL", "https://directory.example")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "CODE42", cfg.Survey.StaffAccessCode)
	assert.Equal(t, 3, cfg.Survey.DailySubmissionLimit)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "archive.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://directory.example", cfg.Directory.BaseURL)
}

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultPasswordMinLength, cfg.App.PasswordMinLength)
	assert.Equal(t, DefaultMaxFailedAttempts, cfg.App.MaxFailedAttempts)
	assert.Equal(t, DefaultAccountLockTime, cfg.App.AccountLockTime)
	assert.Equal(t, DefaultResetTokenDuration, cfg.App.ResetTokenDuration)
	assert.Equal(t, DefaultStaffAccessCode, cfg.Survey.StaffAccessCode)
	assert.Equal(t, DefaultDailySubmissionLimit, cfg.Survey.DailySubmissionLimit)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Survey.StaffAccessCode = "CUSTOM"
	cfg.Survey.DailySubmissionLimit = 5
	cfg.applyDefaults()

	assert.Equal(t, "CUSTOM", cfg.Survey.StaffAccessCode)
	assert.Equal(t, 5, cfg.Survey.DailySubmissionLimit)
}

func TestValidate_RequiresSignKeyAndIssuer(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg.App.TokenSignKey = "k"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg.App.TokenIssuer = "i"
	assert.NoError(t, cfg.validate())
}

func TestValidate_RejectsEmptyAccessCode(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.App.TokenSignKey = "k"
	cfg.App.TokenIssuer = "i"
	cfg.Survey.StaffAccessCode = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidSurveyConfigs)
}

func TestParseJSON_PopulatesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_sign_key": "json-key", "token_issuer": "json-issuer", "token_duration": "24h"},
		"survey": {"staff_access_code": "JSONCODE", "daily_submission_limit": 4},
		"server": {"http_address": "0.0.0.0:7000", "request_timeout": "45s"},
		"storage": {"db": {"dsn": "json.db"}},
		"directory": {"base_url": "https://json.example", "request_timeout": "5s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "JSONCODE", cfg.Survey.StaffAccessCode)
	assert.Equal(t, 4, cfg.Survey.DailySubmissionLimit)
	assert.Equal(t, "0.0.0.0:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://json.example", cfg.Directory.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Directory.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", a.String())

	var b NetAddress
	assert.Error(t, b.Set("no-port"))
	assert.Error(t, b.Set("localhost:0"))
	assert.Error(t, b.Set("not-an-ip:8080"))
	assert.Equal(t, "", b.String())
}
