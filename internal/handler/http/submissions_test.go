package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmaciefficace/feedback/internal/service"
	"github.com/pharmaciefficace/feedback/internal/survey"
	"github.com/pharmaciefficace/feedback/models"
)

func TestListSubmissions_FilterFromQuery(t *testing.T) {
	submissions := &mockSubmissionsService{
		listFn: func(_ context.Context, filter models.SubmissionFilter) ([]models.Submission, error) {
			assert.Equal(t, survey.TypeClient, filter.SurveyType)
			assert.Equal(t, "1", filter.PharmacyID)
			assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), filter.From)
			assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), filter.To)
			assert.Equal(t, uint64(50), filter.Limit)
			assert.Equal(t, uint64(100), filter.Offset)
			return []models.Submission{{ID: "sub-1", SurveyType: filter.SurveyType}}, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), SubmissionService: submissions})

	target := "/api/submissions?survey_type=client&pharmacy_id=1" +
		"&from=2024-06-01T00:00:00Z&to=2024-07-01T00:00:00Z&limit=50&offset=100"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, target, ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "sub-1", listed[0].ID)
}

func TestListSubmissions_BadDate(t *testing.T) {
	router := newTestRouter(&service.Services{AuthService: asAdmin()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/submissions?from=hier", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSubmissions_RequiresAdmin(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 5, Role: models.RolePharmacien}, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: auth})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/submissions", ""))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetSubmission_NotFound(t *testing.T) {
	submissions := &mockSubmissionsService{
		getFn: func(_ context.Context, _ string) (models.Submission, error) {
			return models.Submission{}, service.ErrSubmissionNotFound
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), SubmissionService: submissions})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/submissions/absente", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSubmission_ReturnsRecord(t *testing.T) {
	submissions := &mockSubmissionsService{
		getFn: func(_ context.Context, id string) (models.Submission, error) {
			return models.Submission{ID: id, SurveyType: survey.TypeClient, PharmacyID: "1"}, nil
		},
	}
	router := newTestRouter(&service.Services{AuthService: asAdmin(), SubmissionService: submissions})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/submissions/sub-9", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var submission models.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submission))
	assert.Equal(t, "sub-9", submission.ID)
	assert.Equal(t, "1", submission.PharmacyID)
}
