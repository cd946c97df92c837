package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmaciefficace/feedback/internal/service"
	"github.com/pharmaciefficace/feedback/models"
)

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer token")
	return req
}

func TestCurrentUser_SanitizesResponse(t *testing.T) {
	accounts := &mockAccountService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "admin@pharmaciefficace.com", PasswordHash: "hash"}, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), AccountService: accounts})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/users/me", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(1), user.UserID)
}

func TestUpdateProfile_PartialBody(t *testing.T) {
	accounts := &mockAccountService{
		updateProfileFn: func(_ context.Context, _ int64, req models.UpdateProfileRequest) (models.User, error) {
			require.NotNil(t, req.Name)
			assert.Equal(t, "Marie Dupont", *req.Name)
			assert.Nil(t, req.Email)
			return models.User{Name: *req.Name}, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), AccountService: accounts})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/users/me", `{"name":"Marie Dupont"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	accounts := &mockAccountService{
		updateProfileFn: func(_ context.Context, _ int64, _ models.UpdateProfileRequest) (models.User, error) {
			return models.User{}, service.ErrEmailAlreadyUsed
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), AccountService: accounts})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/users/me", `{"email":"prise@exemple.fr"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), msgEmailTaken)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	accounts := &mockAccountService{
		changePasswordFn: func(_ context.Context, _ int64, _, _ string) error {
			return service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), AccountService: accounts})

	body := `{"current_password":"faux","new_password":"Abcd1234!"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/users/me/password", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateUser_AsAdmin(t *testing.T) {
	accounts := &mockAccountService{
		createUserFn: func(_ context.Context, req models.CreateUserRequest) (models.User, error) {
			assert.Equal(t, models.RolePharmacien, req.Role)
			return models.User{UserID: 3, Email: req.Email, Role: req.Role}, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), AccountService: accounts})

	body := `{"email":"pharma@exemple.fr","name":"Pharma","password":"Abcd1234!","role":"pharmacien"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/users", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(3), user.UserID)
}

func TestDeleteUser_Self(t *testing.T) {
	accounts := &mockAccountService{
		deleteUserFn: func(_ context.Context, actorID, targetID int64) error {
			assert.Equal(t, actorID, targetID)
			return service.ErrSelfDeleteForbidden
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), AccountService: accounts})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/users/1", ""))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), msgSelfDelete)
}

func TestDeleteUser_NonNumericID(t *testing.T) {
	router := newTestRouter(&service.Services{AuthService: asAdmin()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/users/abc", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavorites_RoundTrip(t *testing.T) {
	var added []string
	directory := &mockDirectoryService{
		addFavoriteFn: func(_ context.Context, userID int64, pharmacyID string) error {
			assert.Equal(t, int64(1), userID)
			added = append(added, pharmacyID)
			return nil
		},
		favoritesFn: func(_ context.Context, _ int64) ([]string, error) {
			return added, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), DirectoryService: directory})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPut, "/api/users/me/favorites/12", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/users/me/favorites", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var ids []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
	assert.Equal(t, []string{"12"}, ids)
}

func TestRemoveFavorite_Forwards(t *testing.T) {
	removed := ""
	directory := &mockDirectoryService{
		removeFavoriteFn: func(_ context.Context, _ int64, pharmacyID string) error {
			removed = pharmacyID
			return nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), DirectoryService: directory})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/users/me/favorites/12", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12", removed)
}
