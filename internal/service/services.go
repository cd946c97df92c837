package service

import (
	"github.com/pharmaciefficace/feedback/internal/adapter"
	"github.com/pharmaciefficace/feedback/internal/config"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/store"
)

// Services aggregates every application service behind one wiring point.
type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	AccountService       AccountService
	SurveySessionService SurveySessionService
	SubmissionService    SubmissionService
	DirectoryService     DirectoryService
}

// NewServices wires the service layer onto the repositories and the
// directory client.
func NewServices(storages *store.Storages, directory adapter.DirectoryClient, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	submissions := NewSubmissionService(storages.Submissions, logger)

	return &Services{
		AuthService:          NewAuthService(storages.Users, cfg.App, logger),
		PasswordResetService: NewPasswordResetService(storages.Users, storages.ResetTokens, cfg.App, logger),
		AccountService:       NewAccountService(storages.Users, cfg.App, logger),
		SurveySessionService: NewSurveySessionService(cfg.Survey, storages.Counter, submissions, logger),
		SubmissionService:    submissions,
		DirectoryService:     NewDirectoryService(directory, storages.Favorites, logger),
	}
}
