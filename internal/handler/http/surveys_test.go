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
	"github.com/pharmaciefficace/feedback/internal/survey"
	"github.com/pharmaciefficace/feedback/models"
)

func TestStartSession_Customer(t *testing.T) {
	sessions := &mockSessionService{
		startFn: func(_ context.Context, flow, clientKey string) (service.SessionView, error) {
			assert.Equal(t, string(survey.FlowCustomer), flow)
			assert.Equal(t, "client-key-1", clientKey)
			return service.SessionView{
				SessionID: "s-1",
				Flow:      flow,
				State:     survey.StateSelectingPharmacy,
			}, nil
		},
	}
	router := newTestRouter(&service.Services{SurveySessionService: sessions})

	body := `{"flow":"client","client_key":"client-key-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/surveys/sessions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var view service.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "s-1", view.SessionID)
	assert.Equal(t, survey.StateSelectingPharmacy, view.State)
}

func TestStartSession_UnknownFlow(t *testing.T) {
	sessions := &mockSessionService{
		startFn: func(_ context.Context, _, _ string) (service.SessionView, error) {
			return service.SessionView{}, service.ErrUnknownFlow
		},
	}
	router := newTestRouter(&service.Services{SurveySessionService: sessions})

	req := httptest.NewRequest(http.MethodPost, "/api/surveys/sessions", strings.NewReader(`{"flow":"autre"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSession_NotFound(t *testing.T) {
	sessions := &mockSessionService{
		getFn: func(_ context.Context, _ string) (service.SessionView, error) {
			return service.SessionView{}, service.ErrSessionNotFound
		},
	}
	router := newTestRouter(&service.Services{SurveySessionService: sessions})

	req := httptest.NewRequest(http.MethodGet, "/api/surveys/sessions/absent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgSurveyNotFound)
}

func TestSelectPharmacy_PassesSessionAndID(t *testing.T) {
	sessions := &mockSessionService{
		pharmacyFn: func(_ context.Context, sessionID, pharmacyID string) (service.SessionView, error) {
			assert.Equal(t, "s-1", sessionID)
			assert.Equal(t, "1", pharmacyID)
			return service.SessionView{SessionID: sessionID, State: survey.StateAnswering}, nil
		},
	}
	router := newTestRouter(&service.Services{SurveySessionService: sessions})

	req := httptest.NewRequest(http.MethodPost, "/api/surveys/sessions/s-1/pharmacy", strings.NewReader(`{"pharmacy_id":"1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEnterAccessCode_WrongCodeIsNotAnHTTPError(t *testing.T) {
	sessions := &mockSessionService{
		accessCodeFn: func(_ context.Context, _, code string) (service.SessionView, error) {
			assert.Equal(t, "WRONG", code)
			return service.SessionView{
				State:     survey.StateEnteringAccessCode,
				AuthError: survey.AuthErrorMessage,
			}, nil
		},
	}
	router := newTestRouter(&service.Services{SurveySessionService: sessions})

	req := httptest.NewRequest(http.MethodPost, "/api/surveys/sessions/s-1/access-code", strings.NewReader(`{"code":"WRONG"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view service.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, survey.StateEnteringAccessCode, view.State)
	assert.Equal(t, survey.AuthErrorMessage, view.AuthError)
}

func TestRecordAnswer_ForwardsBody(t *testing.T) {
	optionID := int64(101)
	sessions := &mockSessionService{
		recordAnswerFn: func(_ context.Context, sessionID string, req models.RecordAnswerRequest) (service.SessionView, error) {
			assert.Equal(t, "s-1", sessionID)
			assert.Equal(t, int64(1), req.QuestionID)
			require.NotNil(t, req.OptionID)
			assert.Equal(t, optionID, *req.OptionID)
			return service.SessionView{CanProceed: true}, nil
		},
	}
	router := newTestRouter(&service.Services{SurveySessionService: sessions})

	body := `{"question_id":1,"option_id":101}`
	req := httptest.NewRequest(http.MethodPost, "/api/surveys/sessions/s-1/answers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view service.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.True(t, view.CanProceed)
}

func TestNext_ReportsCompletion(t *testing.T) {
	sessions := &mockSessionService{
		nextFn: func(_ context.Context, sessionID string) (service.SessionView, error) {
			return service.SessionView{SessionID: sessionID, State: survey.StateCompleted}, nil
		},
	}
	router := newTestRouter(&service.Services{SurveySessionService: sessions})

	req := httptest.NewRequest(http.MethodPost, "/api/surveys/sessions/s-1/next", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var view service.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, survey.StateCompleted, view.State)
}

func TestPrevious_Forwards(t *testing.T) {
	called := false
	sessions := &mockSessionService{
		previousFn: func(_ context.Context, sessionID string) (service.SessionView, error) {
			called = true
			assert.Equal(t, "s-1", sessionID)
			return service.SessionView{}, nil
		},
	}
	router := newTestRouter(&service.Services{SurveySessionService: sessions})

	req := httptest.NewRequest(http.MethodPost, "/api/surveys/sessions/s-1/previous", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
