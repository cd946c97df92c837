package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/models"
)

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := submissionFilterFromQuery(r)
	if err != nil {
		log.Debug().Err(err).Msg("bad submission filter")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidData}, http.StatusBadRequest)
		return
	}

	submissions, err := h.services.SubmissionService.List(ctx, filter)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, submissions, http.StatusOK)
}

func (h *Handler) getSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	submission, err := h.services.SubmissionService.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, submission, http.StatusOK)
}

// submissionFilterFromQuery builds an archive filter from the request query
// string. Date bounds use RFC 3339; "from" is inclusive, "to" exclusive.
func submissionFilterFromQuery(r *http.Request) (models.SubmissionFilter, error) {
	query := r.URL.Query()

	filter := models.SubmissionFilter{
		SurveyType: query.Get("survey_type"),
		PharmacyID: query.Get("pharmacy_id"),
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.SubmissionFilter{}, err
		}
		filter.From = from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.SubmissionFilter{}, err
		}
		filter.To = to
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.SubmissionFilter{}, err
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.SubmissionFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
