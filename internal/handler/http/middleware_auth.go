package http

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-config-gate/internal/app"
	"github.com/MKhiriev/go-config-gate/internal/logger"
	"github.com/MKhiriev/go-config-gate/internal/utils"
	"github.com/MKhiriev/go-config-gate/models"
)

// auth is the credential gate: an HTTP middleware that enforces bearer
// authentication against the server-held master API key.
//
// The checks run in a fixed order, and the first failing one determines the
// response:
//   - The master key is not set on the server — HTTP 500 with
//     [app.MsgServerNotConfigured]. This is checked before the request's
//     header is even looked at: without a secret the server cannot accept
//     any credential, and the fault lies with the operator, not the caller.
//   - The "Authorization" header is absent or carries no usable credential
//     ([ErrEmptyAuthorizationHeader], [ErrInvalidAuthorizationHeader],
//     [ErrEmptyToken]) — HTTP 403 with [app.MsgNotAuthenticated].
//   - The presented credential does not match the master key — HTTP 401
//     with [app.MsgInvalidToken]. The comparison is constant-time.
//
// On success the request proceeds to the next handler with
// [models.OutcomeAuthenticated] stored in the request context under
// [utils.AuthOutcomeCtxKey].
//
// Rejection events are logged using the context-scoped logger obtained via
// [logger.FromRequest]. Credential values never appear in the log.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.masterAPIKey == "" {
			log.Error().Stringer("outcome", models.OutcomeServerMisconfigured).Msg("master api key is not set")
			utils.WriteJSONError(w, app.MsgServerNotConfigured, http.StatusInternalServerError)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Stringer("outcome", models.OutcomeRejectedMissing).Send()
			utils.WriteJSONError(w, app.MsgNotAuthenticated, http.StatusForbidden)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Stringer("outcome", models.OutcomeRejectedMissing).Send()
			utils.WriteJSONError(w, app.MsgNotAuthenticated, http.StatusForbidden)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.masterAPIKey)) != 1 {
			log.Warn().Stringer("outcome", models.OutcomeRejectedInvalid).Msg("credential does not match master api key")
			utils.WriteJSONError(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		// Store the outcome in the context so that downstream handlers can
		// report it without re-checking the credential.
		ctx := context.WithValue(r.Context(), utils.AuthOutcomeCtxKey, models.OutcomeAuthenticated)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer credential from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <credential>
//
// For example:
//
//	Authorization: Bearer super-secret-key
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the credential is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	token := parts[1]
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
