package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-config-gate/internal/logger"
)

// withLogging emits one access-log entry per request with the URI, method,
// response status, duration, and body size. The entry's level follows the
// status class — 5xx at Error, 4xx at Warn, everything else at Info — so
// rejected credentials and server faults stand out in the stream.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		var entry *zerolog.Event
		switch {
		case lw.status >= http.StatusInternalServerError:
			entry = log.Error()
		case lw.status >= http.StatusBadRequest:
			entry = log.Warn()
		default:
			entry = log.Info()
		}

		entry.
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
