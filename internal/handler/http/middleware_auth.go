package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/pharmaciefficace/feedback/internal/logger"
	"github.com/pharmaciefficace/feedback/internal/utils"
	"github.com/pharmaciefficace/feedback/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to an account through the auth service, and on success stores
// the account's ID and role in the request context under
// [utils.UserIDCtxKey] and [utils.UserRoleCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests in the following cases:
//   - The "Authorization" header is absent or malformed (HTTP 401).
//   - The token is expired or otherwise invalid (HTTP 401).
//   - The account is currently locked (HTTP 423).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Message: msgSessionExpired}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, log, err)
			return
		}

		// Store the account's identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.UserRoleCtxKey, user.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly gates a route group to accounts with the admin role. It must be
// mounted after [Handler.auth], which populates the role in the context.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		role, ok := utils.GetUserRoleFromContext(r.Context())
		if !ok || role != models.RoleAdmin {
			log.Debug().Str("role", role).Msg("admin route refused")
			utils.WriteJSON(w, models.ErrorResponse{Message: msgForbidden}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
