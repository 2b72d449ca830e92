package http

import (
	"net/http"

	"github.com/MKhiriev/go-config-gate/internal/app"
	"github.com/MKhiriev/go-config-gate/internal/logger"
	"github.com/MKhiriev/go-config-gate/internal/utils"
	"github.com/MKhiriev/go-config-gate/models"
)

// hello serves the protected greeting endpoint. It is registered behind the
// credential gate, so by the time it runs the auth outcome is already in the
// request context.
func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	outcome, ok := utils.GetAuthOutcomeFromContext(r.Context())
	if !ok {
		// Reaching this point without an outcome means the route was wired
		// outside the gate.
		log.Error().Msg("no auth outcome in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.HelloResponse{
		Message:       app.MsgHello,
		Authenticated: outcome == models.OutcomeAuthenticated,
	}, http.StatusOK)
}
