package http

import (
	"errors"
	"net/http"

	"github.com/pharmaciefficace/feedback/internal/adapter"
	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/service"
	"github.com/pharmaciefficace/feedback/internal/store"
	"github.com/pharmaciefficace/feedback/internal/survey"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/internal/validators"
	"github.com/pharmaciefficace/feedback/models"
)

// User-presentable messages. The UI surfaces these verbatim, so they are
// written in French like the rest of the product copy.
const (
	msgInvalidJSON      = "Requête invalide."
	msgInvalidData      = "Données invalides."
	msgInvalidEmail     = "Adresse e-mail invalide."
	msgWeakPassword     = "Le mot de passe doit contenir au moins 8 caractères, dont une majuscule, une minuscule, un chiffre et un caractère spécial."
	msgBadCredentials   = "Adresse e-mail ou mot de passe incorrect."
	msgAccountLocked    = "Compte temporairement verrouillé. Veuillez réessayer plus tard."
	msgSessionExpired   = "Session expirée. Veuillez vous reconnecter."
	msgResetTokenBad    = "Lien de réinitialisation invalide ou expiré."
	msgUserNotFound     = "Utilisateur introuvable."
	msgEmailTaken       = "Cette adresse e-mail est déjà utilisée."
	msgSelfDelete       = "Vous ne pouvez pas supprimer votre propre compte."
	msgInvalidRole      = "Rôle invalide."
	msgForbidden        = "Accès non autorisé."
	msgSurveyNotFound   = "Session de questionnaire introuvable."
	msgWrongState       = "Action impossible dans l'état actuel du questionnaire."
	msgUnknownSurvey    = "Type de questionnaire inconnu."
	msgPharmacyNotFound = "Pharmacie introuvable."
	msgDirectoryDown    = "Le service d'annuaire est momentanément indisponible."
	msgNotFound         = "Ressource introuvable."
	msgInternal         = "Une erreur est survenue. Veuillez réessayer."
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrAccountLocked:           http.StatusLocked,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrInvalidEmail:            http.StatusBadRequest,
	service.ErrEmailAlreadyUsed:        http.StatusConflict,
	service.ErrResetTokenInvalid:       http.StatusBadRequest,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrUnauthorized:            http.StatusForbidden,
	service.ErrSelfDeleteForbidden:     http.StatusForbidden,
	service.ErrInvalidRole:             http.StatusBadRequest,
	service.ErrSessionNotFound:         http.StatusNotFound,
	service.ErrUnknownFlow:             http.StatusBadRequest,
	service.ErrSubmissionNotFound:      http.StatusNotFound,

	validators.ErrInvalidEmail:        http.StatusBadRequest,
	validators.ErrPasswordTooShort:    http.StatusBadRequest,
	validators.ErrPasswordNoLowercase: http.StatusBadRequest,
	validators.ErrPasswordNoUppercase: http.StatusBadRequest,
	validators.ErrPasswordNoDigit:     http.StatusBadRequest,
	validators.ErrPasswordNoSpecial:   http.StatusBadRequest,

	survey.ErrWrongState:        http.StatusConflict,
	survey.ErrUnknownSurveyType: http.StatusBadRequest,

	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrUnauthorized:        http.StatusBadGateway,
	adapter.ErrForbidden:           http.StatusBadGateway,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrConflict:            http.StatusConflict,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,

	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrResetTokenNotFound: http.StatusBadRequest,
	store.ErrSubmissionNotFound: http.StatusNotFound,
	store.ErrSubmissionNotSaved: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     msgInvalidData,
	service.ErrInvalidCredentials:      msgBadCredentials,
	service.ErrAccountLocked:           msgAccountLocked,
	service.ErrTokenIsExpiredOrInvalid: msgSessionExpired,
	service.ErrInvalidEmail:            msgInvalidEmail,
	service.ErrEmailAlreadyUsed:        msgEmailTaken,
	service.ErrResetTokenInvalid:       msgResetTokenBad,
	service.ErrUserNotFound:            msgUserNotFound,
	service.ErrUnauthorized:            msgForbidden,
	service.ErrSelfDeleteForbidden:     msgSelfDelete,
	service.ErrInvalidRole:             msgInvalidRole,
	service.ErrSessionNotFound:         msgSurveyNotFound,
	service.ErrUnknownFlow:             msgInvalidData,
	service.ErrSubmissionNotFound:      msgNotFound,

	validators.ErrInvalidEmail:        msgInvalidEmail,
	validators.ErrPasswordTooShort:    msgWeakPassword,
	validators.ErrPasswordNoLowercase: msgWeakPassword,
	validators.ErrPasswordNoUppercase: msgWeakPassword,
	validators.ErrPasswordNoDigit:     msgWeakPassword,
	validators.ErrPasswordNoSpecial:   msgWeakPassword,

	survey.ErrWrongState:        msgWrongState,
	survey.ErrUnknownSurveyType: msgUnknownSurvey,

	adapter.ErrBadRequest:          msgInvalidData,
	adapter.ErrUnauthorized:        msgDirectoryDown,
	adapter.ErrForbidden:           msgDirectoryDown,
	adapter.ErrNotFound:            msgPharmacyNotFound,
	adapter.ErrConflict:            msgEmailTaken,
	adapter.ErrBadGateway:          msgDirectoryDown,
	adapter.ErrInternalServerError: msgDirectoryDown,

	store.ErrNoUserWasFound:     msgUserNotFound,
	store.ErrEmailAlreadyExists: msgEmailTaken,
	store.ErrResetTokenNotFound: msgResetTokenBad,
	store.ErrSubmissionNotFound: msgNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgInternal
}

// writeError translates err into its HTTP status and French message and
// writes the uniform JSON error body.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: messageFromError(err)}, status)
}
