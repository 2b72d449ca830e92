package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-config-gate/internal/app"
	"github.com/MKhiriev/go-config-gate/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		if h.configDocumentPath != "" {
			r.Get("/config.json", h.getConfigDocument)
		}
	})

	// routes behind the credential gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/hello", h.hello)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
