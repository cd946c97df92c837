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

	"github.com/pharmaciefficace/feedback/internal/adapter"
	"github.com/pharmaciefficace/feedback/internal/service"
	"github.com/pharmaciefficace/feedback/models"
)

func TestDepartements_ReturnsList(t *testing.T) {
	directory := &mockDirectoryService{
		departementsFn: func(_ context.Context) ([]models.Departement, error) {
			return []models.Departement{{ID: "1", Name: "Atlantique"}, {ID: "2", Name: "Littoral"}}, nil
		},
	}
	router := newTestRouter(&service.Services{DirectoryService: directory})

	req := httptest.NewRequest(http.MethodGet, "/api/directory/departements", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var departements []models.Departement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &departements))
	assert.Len(t, departements, 2)
}

func TestCommunes_PassesDepartementID(t *testing.T) {
	directory := &mockDirectoryService{
		communesFn: func(_ context.Context, departementID string) ([]models.Commune, error) {
			assert.Equal(t, "3", departementID)
			return nil, nil
		},
	}
	router := newTestRouter(&service.Services{DirectoryService: directory})

	req := httptest.NewRequest(http.MethodGet, "/api/directory/departements/3/communes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPharmacies_QueryParameters(t *testing.T) {
	directory := &mockDirectoryService{
		pharmaciesFn: func(_ context.Context, page int, departementID, communeID string) (models.PharmacyPage, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, "1", departementID)
			assert.Equal(t, "5", communeID)
			return models.PharmacyPage{Page: page}, nil
		},
	}
	router := newTestRouter(&service.Services{DirectoryService: directory})

	req := httptest.NewRequest(http.MethodGet, "/api/directory/pharmacies?page=2&departement=1&commune=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPharmacy_NotFound(t *testing.T) {
	directory := &mockDirectoryService{
		pharmacyFn: func(_ context.Context, _ string) (models.Pharmacy, error) {
			return models.Pharmacy{}, adapter.ErrNotFound
		},
	}
	router := newTestRouter(&service.Services{DirectoryService: directory})

	req := httptest.NewRequest(http.MethodGet, "/api/directory/pharmacies/404", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgPharmacyNotFound)
}

func TestSearchPharmacies_ForwardsCriteria(t *testing.T) {
	directory := &mockDirectoryService{
		searchFn: func(_ context.Context, req models.PharmacySearchRequest) ([]models.Pharmacy, error) {
			assert.Equal(t, "croix", req.Query)
			return []models.Pharmacy{{ID: "9", Name: "Pharmacie de la Croix"}}, nil
		},
	}
	router := newTestRouter(&service.Services{DirectoryService: directory})

	req := httptest.NewRequest(http.MethodPost, "/api/directory/pharmacies/search", strings.NewReader(`{"query":"croix"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var pharmacies []models.Pharmacy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pharmacies))
	require.Len(t, pharmacies, 1)
	assert.Equal(t, "9", pharmacies[0].ID)
}

func TestCheckEmail_ReportsExistence(t *testing.T) {
	directory := &mockDirectoryService{
		checkEmailFn: func(_ context.Context, email string) (bool, error) {
			return email == "connu@exemple.fr", nil
		},
	}
	router := newTestRouter(&service.Services{DirectoryService: directory})

	req := httptest.NewRequest(http.MethodPost, "/api/directory/check-email", strings.NewReader(`{"email":"connu@exemple.fr"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp["exists"])
}

func TestCheckEmail_InvalidFormat(t *testing.T) {
	directory := &mockDirectoryService{
		checkEmailFn: func(_ context.Context, _ string) (bool, error) {
			return false, service.ErrInvalidEmail
		},
	}
	router := newTestRouter(&service.Services{DirectoryService: directory})

	req := httptest.NewRequest(http.MethodPost, "/api/directory/check-email", strings.NewReader(`{"email":"pas-une-adresse"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidEmail)
}

func TestCreatePharmacy_AdminOnly(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/directory/pharmacies", strings.NewReader(`{"nom":"Pharmacie Centrale"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePharmacy_AsAdmin(t *testing.T) {
	directory := &mockDirectoryService{
		createPharmacyFn: func(_ context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error) {
			pharmacy.ID = "77"
			return pharmacy, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), DirectoryService: directory})

	req := httptest.NewRequest(http.MethodPost, "/api/directory/pharmacies", strings.NewReader(`{"nom":"Pharmacie Centrale"}`))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Pharmacy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "77", created.ID)
}

func TestUpdatePharmacy_PathWinsOverBody(t *testing.T) {
	directory := &mockDirectoryService{
		updatePharmacyFn: func(_ context.Context, pharmacy models.Pharmacy) (models.Pharmacy, error) {
			assert.Equal(t, "12", pharmacy.ID)
			return pharmacy, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), DirectoryService: directory})

	req := httptest.NewRequest(http.MethodPatch, "/api/directory/pharmacies/12", strings.NewReader(`{"id":"99","nom":"Renommée"}`))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
