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

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated route")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AccountService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, user.Sanitized(), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated route")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AccountService.UpdateProfile(ctx, userID, req)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, user.Sanitized(), http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated route")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Success: true}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AccountService.ListUsers(ctx)
	if err != nil {
		writeError(w, log, err)
		return
	}

	sanitized := make([]models.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}

	utils.WriteJSON(w, sanitized, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AccountService.CreateUser(ctx, req)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info().Int64("id", user.UserID).Str("role", user.Role).Msg("user account created")
	utils.WriteJSON(w, user.Sanitized(), http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated route")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Debug().Err(err).Msg("non-numeric user id")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidData}, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.DeleteUser(ctx, actorID, targetID); err != nil {
		writeError(w, log, err)
		return
	}

	log.Info().Int64("id", targetID).Msg("user account deleted")
	utils.WriteJSON(w, models.StatusResponse{Success: true}, http.StatusOK)
}

func (h *Handler) favorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated route")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
		return
	}

	ids, err := h.services.DirectoryService.Favorites(ctx, userID)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, ids, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated route")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
		return
	}

	if err := h.services.DirectoryService.AddFavorite(ctx, userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Success: true}, http.StatusOK)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context of an authenticated route")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
		return
	}

	if err := h.services.DirectoryService.RemoveFavorite(ctx, userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Success: true}, http.StatusOK)
}
