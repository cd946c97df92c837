package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmaciefficace/feedback/internal/service"
)

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/inconnu", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_WrongMethodHidesRoute(t *testing.T) {
	router := newTestRouter(&service.Services{})

	// Login only accepts POST; a GET must look like a missing route.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SetsTraceIDHeader(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/directory/departements", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRouter_PropagatesIncomingTraceID(t *testing.T) {
	router := newTestRouter(&service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/directory/departements", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
