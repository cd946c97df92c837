package http

import (
	"encoding/json"
	"net/http"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/models"
)

// Acknowledgement sent for every reset request, whether or not the email is
// known. A distinct answer for unknown addresses would allow enumeration.
const msgResetRequested = "Si un compte existe pour cette adresse, un lien de réinitialisation a été envoyé."

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		User:  user.Sanitized(),
		Token: token.SignedString,
	}, http.StatusOK)
}

// logout acknowledges the end of a session. Tokens are stateless, so the
// client discards its copy; nothing is revoked server-side.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Success: true}, http.StatusOK)
}

func (h *Handler) resetRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	// The minted token is delivered out of band. It never appears in the
	// response body, and unknown addresses get the same acknowledgement.
	if _, err := h.services.PasswordResetService.RequestReset(ctx, req.Email); err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Success: true, Message: msgResetRequested}, http.StatusOK)
}

func (h *Handler) resetVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := h.services.PasswordResetService.VerifyResetToken(ctx, req.Token, req.Email); err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Success: true}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := h.services.PasswordResetService.ResetPassword(ctx, req.Token, req.Email, req.NewPassword); err != nil {
		writeError(w, log, err)
		return
	}

	log.Info().Msg("password reset completed")
	utils.WriteJSON(w, models.StatusResponse{Success: true}, http.StatusOK)
}
