package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/survey"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/models"
)

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	view, err := h.services.SurveySessionService.StartSession(ctx, req.Flow, req.ClientKey)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Debug().Str("session_id", view.SessionID).Str("flow", view.Flow).Msg("survey session started")
	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	view, err := h.services.SurveySessionService.GetSession(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) selectPharmacy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SelectPharmacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	view, err := h.services.SurveySessionService.SelectPharmacy(ctx, chi.URLParam(r, "id"), req.PharmacyID)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) enterAccessCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AccessCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	// A wrong code is not an HTTP error. The view carries the visible
	// authentication error and the session stays where it was.
	view, err := h.services.SurveySessionService.EnterAccessCode(ctx, chi.URLParam(r, "id"), req.Code)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) selectSurveyType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SelectSurveyTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	view, err := h.services.SurveySessionService.SelectSurveyType(ctx, chi.URLParam(r, "id"), req.SurveyType)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	view, err := h.services.SurveySessionService.RecordAnswer(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	view, err := h.services.SurveySessionService.Next(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	if view.State == survey.StateCompleted {
		log.Info().Str("session_id", view.SessionID).Str("survey_type", view.SurveyType).Msg("survey completed")
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) previousQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	view, err := h.services.SurveySessionService.Previous(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}
