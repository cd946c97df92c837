package http

import (
	"context"
	"net/http"
	"time"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/service"
	"github.com/pharmaciefficace/feedback/models"
)

// Func-field mocks for every service interface. A nil field makes the call
// succeed with zero values so that each test overrides only what it checks.

type mockAuthService struct {
	loginFn        func(ctx context.Context, email, password string) (models.User, models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	if m.loginFn == nil {
		return models.User{}, models.Token{}, nil
	}
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if m.authenticateFn == nil {
		return models.User{}, nil
	}
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) CreateToken(_ context.Context, _ models.User) (models.Token, error) {
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{}, nil
}

type mockResetService struct {
	requestResetFn  func(ctx context.Context, email string) (string, error)
	verifyFn        func(ctx context.Context, token, email string) error
	resetPasswordFn func(ctx context.Context, token, email, newPassword string) error
}

func (m *mockResetService) RequestReset(ctx context.Context, email string) (string, error) {
	if m.requestResetFn == nil {
		return "", nil
	}
	return m.requestResetFn(ctx, email)
}

func (m *mockResetService) VerifyResetToken(ctx context.Context, token, email string) error {
	if m.verifyFn == nil {
		return nil
	}
	return m.verifyFn(ctx, token, email)
}

func (m *mockResetService) ResetPassword(ctx context.Context, token, email, newPassword string) error {
	if m.resetPasswordFn == nil {
		return nil
	}
	return m.resetPasswordFn(ctx, token, email, newPassword)
}

type mockAccountService struct {
	getUserFn        func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn  func(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, current, newPassword string) error
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	createUserFn     func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	deleteUserFn     func(ctx context.Context, actorID, targetID int64) error
}

func (m *mockAccountService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn == nil {
		return models.User{}, nil
	}
	return m.getUserFn(ctx, userID)
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error) {
	if m.updateProfileFn == nil {
		return models.User{}, nil
	}
	return m.updateProfileFn(ctx, userID, req)
}

func (m *mockAccountService) ChangePassword(ctx context.Context, userID int64, current, newPassword string) error {
	if m.changePasswordFn == nil {
		return nil
	}
	return m.changePasswordFn(ctx, userID, current, newPassword)
}

func (m *mockAccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn == nil {
		return nil, nil
	}
	return m.listUsersFn(ctx)
}

func (m *mockAccountService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if m.createUserFn == nil {
		return models.User{}, nil
	}
	return m.createUserFn(ctx, req)
}

func (m *mockAccountService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	if m.deleteUserFn == nil {
		return nil
	}
	return m.deleteUserFn(ctx, actorID, targetID)
}

type mockSessionService struct {
	startFn        func(ctx context.Context, flow, clientKey string) (service.SessionView, error)
	getFn          func(ctx context.Context, sessionID string) (service.SessionView, error)
	pharmacyFn     func(ctx context.Context, sessionID, pharmacyID string) (service.SessionView, error)
	accessCodeFn   func(ctx context.Context, sessionID, code string) (service.SessionView, error)
	surveyTypeFn   func(ctx context.Context, sessionID, surveyType string) (service.SessionView, error)
	recordAnswerFn func(ctx context.Context, sessionID string, req models.RecordAnswerRequest) (service.SessionView, error)
	nextFn         func(ctx context.Context, sessionID string) (service.SessionView, error)
	previousFn     func(ctx context.Context, sessionID string) (service.SessionView, error)
}

func (m *mockSessionService) StartSession(ctx context.Context, flow, clientKey string) (service.SessionView, error) {
	if m.startFn == nil {
		return service.SessionView{}, nil
	}
	return m.startFn(ctx, flow, clientKey)
}

func (m *mockSessionService) GetSession(ctx context.Context, sessionID string) (service.SessionView, error) {
	if m.getFn == nil {
		return service.SessionView{}, nil
	}
	return m.getFn(ctx, sessionID)
}

func (m *mockSessionService) SelectPharmacy(ctx context.Context, sessionID, pharmacyID string) (service.SessionView, error) {
	if m.pharmacyFn == nil {
		return service.SessionView{}, nil
	}
	return m.pharmacyFn(ctx, sessionID, pharmacyID)
}

func (m *mockSessionService) EnterAccessCode(ctx context.Context, sessionID, code string) (service.SessionView, error) {
	if m.accessCodeFn == nil {
		return service.SessionView{}, nil
	}
	return m.accessCodeFn(ctx, sessionID, code)
}

func (m *mockSessionService) SelectSurveyType(ctx context.Context, sessionID, surveyType string) (service.SessionView, error) {
	if m.surveyTypeFn == nil {
		return service.SessionView{}, nil
	}
	return m.surveyTypeFn(ctx, sessionID, surveyType)
}

func (m *mockSessionService) RecordAnswer(ctx context.Context, sessionID string, req models.RecordAnswerRequest) (service.SessionView, error) {
	if m.recordAnswerFn == nil {
		return service.SessionView{}, nil
	}
	return m.recordAnswerFn(ctx, sessionID, req)
}

func (m *mockSessionService) Next(ctx context.Context, sessionID string) (service.SessionView, error) {
	if m.nextFn == nil {
		return service.SessionView{}, nil
	}
	return m.nextFn(ctx, sessionID)
}

func (m *mockSessionService) Previous(ctx context.Context, sessionID string) (service.SessionView, error) {
	if m.previousFn == nil {
		return service.SessionView{}, nil
	}
	return m.previousFn(ctx, sessionID)
}

func (m *mockSessionService) PruneIdle(_ time.Duration) int { return 0 }

type mockSubmissionsService struct {
	listFn func(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error)
	getFn  func(ctx context.Context, id string) (models.Submission, error)
}

func (m *mockSubmissionsService) Archive(_ context.Context, _ models.SubmissionPayload) (models.Submission, error) {
	return models.Submission{}, nil
}

func (m *mockSubmissionsService) List(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, filter)
}

func (m *mockSubmissionsService) Get(ctx context.Context, id string) (models.Submission, error) {
	if m.getFn == nil {
		return models.Submission{}, nil
	}
	return m.getFn(ctx, id)
}

type mockDirectoryService struct {
	departementsFn   func(ctx context.Context) ([]models.Departement, error)
	communesFn       func(ctx context.Context, departementID string) ([]models.Commune, error)
	pharmaciesFn     func(ctx context.Context, page int, departementID, communeID string) (models.PharmacyPage, error)
	pharmacyFn       func(ctx context.Context, pharmacyID string) (models.Pharmacy, error)
	searchFn         func(ctx context.Context, req models.PharmacySearchRequest) ([]models.Pharmacy, error)
	checkEmailFn     func(ctx context.Context, email string) (bool, error)
	createPharmacyFn func(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error)
	updatePharmacyFn func(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error)
	favoritesFn      func(ctx context.Context, userID int64) ([]string, error)
	addFavoriteFn    func(ctx context.Context, userID int64, pharmacyID string) error
	removeFavoriteFn func(ctx context.Context, userID int64, pharmacyID string) error
}

func (m *mockDirectoryService) Departements(ctx context.Context) ([]models.Departement, error) {
	if m.departementsFn == nil {
		return nil, nil
	}
	return m.departementsFn(ctx)
}

func (m *mockDirectoryService) Communes(ctx context.Context, departementID string) ([]models.Commune, error) {
	if m.communesFn == nil {
		return nil, nil
	}
	return m.communesFn(ctx, departementID)
}

func (m *mockDirectoryService) Arrondissements(_ context.Context, _ string) ([]models.Arrondissement, error) {
	return nil, nil
}

func (m *mockDirectoryService) Villages(_ context.Context, _ string) ([]models.Village, error) {
	return nil, nil
}

func (m *mockDirectoryService) Pharmacies(ctx context.Context, page int, departementID, communeID string) (models.PharmacyPage, error) {
	if m.pharmaciesFn == nil {
		return models.PharmacyPage{}, nil
	}
	return m.pharmaciesFn(ctx, page, departementID, communeID)
}

func (m *mockDirectoryService) Pharmacy(ctx context.Context, pharmacyID string) (models.Pharmacy, error) {
	if m.pharmacyFn == nil {
		return models.Pharmacy{}, nil
	}
	return m.pharmacyFn(ctx, pharmacyID)
}

func (m *mockDirectoryService) SearchPharmacies(ctx context.Context, req models.PharmacySearchRequest) ([]models.Pharmacy, error) {
	if m.searchFn == nil {
		return nil, nil
	}
	return m.searchFn(ctx, req)
}

func (m *mockDirectoryService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if m.checkEmailFn == nil {
		return false, nil
	}
	return m.checkEmailFn(ctx, email)
}

func (m *mockDirectoryService) CreatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error) {
	if m.createPharmacyFn == nil {
		return pharmacy, nil
	}
	return m.createPharmacyFn(ctx, pharmacy)
}

func (m *mockDirectoryService) UpdatePharmacy(ctx context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error) {
	if m.updatePharmacyFn == nil {
		return pharmacy, nil
	}
	return m.updatePharmacyFn(ctx, pharmacy)
}

func (m *mockDirectoryService) Favorites(ctx context.Context, userID int64) ([]string, error) {
	if m.favoritesFn == nil {
		return nil, nil
	}
	return m.favoritesFn(ctx, userID)
}

func (m *mockDirectoryService) AddFavorite(ctx context.Context, userID int64, pharmacyID string) error {
	if m.addFavoriteFn == nil {
		return nil
	}
	return m.addFavoriteFn(ctx, userID, pharmacyID)
}

func (m *mockDirectoryService) RemoveFavorite(ctx context.Context, userID int64, pharmacyID string) error {
	if m.removeFavoriteFn == nil {
		return nil
	}
	return m.removeFavoriteFn(ctx, userID, pharmacyID)
}

// newTestRouter wires a router over the given services. Nil services fall
// back to permissive mocks.
func newTestRouter(services *service.Services) http.Handler {
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.PasswordResetService == nil {
		services.PasswordResetService = &mockResetService{}
	}
	if services.AccountService == nil {
		services.AccountService = &mockAccountService{}
	}
	if services.SurveySessionService == nil {
		services.SurveySessionService = &mockSessionService{}
	}
	if services.SubmissionService == nil {
		services.SubmissionService = &mockSubmissionsService{}
	}
	if services.DirectoryService == nil {
		services.DirectoryService = &mockDirectoryService{}
	}

	h := &Handler{
		logger:   logger.Nop(),
		services: services,
	}
	return h.Init()
}

// asAdmin returns an AuthService whose tokens always resolve to an admin
// account, for exercising the admin route group.
func asAdmin() service.AuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 1, Role: models.RoleAdmin}, nil
		},
	}
}
