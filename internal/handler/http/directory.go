package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/models"
)

func (h *Handler) departements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	departements, err := h.services.DirectoryService.Departements(ctx)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, departements, http.StatusOK)
}

func (h *Handler) communes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	communes, err := h.services.DirectoryService.Communes(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, communes, http.StatusOK)
}

func (h *Handler) arrondissements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	arrondissements, err := h.services.DirectoryService.Arrondissements(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, arrondissements, http.StatusOK)
}

func (h *Handler) villages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	villages, err := h.services.DirectoryService.Villages(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, villages, http.StatusOK)
}

func (h *Handler) pharmacies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	departementID := r.URL.Query().Get("departement")
	communeID := r.URL.Query().Get("commune")

	pharmacyPage, err := h.services.DirectoryService.Pharmacies(ctx, page, departementID, communeID)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, pharmacyPage, http.StatusOK)
}

func (h *Handler) pharmacy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	pharmacy, err := h.services.DirectoryService.Pharmacy(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, pharmacy, http.StatusOK)
}

func (h *Handler) searchPharmacies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PharmacySearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	pharmacies, err := h.services.DirectoryService.SearchPharmacies(ctx, req)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, pharmacies, http.StatusOK)
}

func (h *Handler) createPharmacy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var pharmacy models.Pharmacy
	if err := json.NewDecoder(r.Body).Decode(&pharmacy); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	created, err := h.services.DirectoryService.CreatePharmacy(ctx, pharmacy)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info().Str("id", created.ID).Msg("pharmacy registered in directory")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePharmacy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var pharmacy models.Pharmacy
	if err := json.NewDecoder(r.Body).Decode(&pharmacy); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	// The path, not the body, names the record being patched.
	pharmacy.ID = chi.URLParam(r, "id")

	updated, err := h.services.DirectoryService.UpdatePharmacy(ctx, pharmacy)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) checkEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CheckEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	exists, err := h.services.DirectoryService.CheckEmail(ctx, req.Email)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, map[string]bool{"exists": exists}, http.StatusOK)
}
