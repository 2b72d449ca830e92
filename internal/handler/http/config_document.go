// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/MKhiriev/go-config-gate/internal/app"
	"github.com/MKhiriev/go-config-gate/internal/logger"
	"github.com/MKhiriev/go-config-gate/internal/utils"
	"github.com/MKhiriev/go-config-gate/models"
)

// getConfigDocument publishes the config document that bootstrapping clients
// fetch before their first authenticated request. The document lives in a
// file named by SERVER_CONFIG_DOCUMENT; the route is only registered when
// that path is set.
//
// The file is re-read on every request, so the operator can rotate the
// credential inside it without restarting the server. The raw bytes are
// served as-is to preserve any extra keys, but they are validated against
// [models.ConfigDocument] first so a half-written file turns into an error
// response instead of a malformed document.
func (h *Handler) getConfigDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data, err := os.ReadFile(h.configDocumentPath)
	if err != nil {
		log.Err(err).Str("path", h.configDocumentPath).Msg("cannot read config document")
		utils.WriteJSONError(w, app.MsgConfigUnavailable, http.StatusNotFound)
		return
	}

	var document models.ConfigDocument
	if err := json.Unmarshal(data, &document); err != nil {
		log.Err(err).Str("path", h.configDocumentPath).Msg("config document is not valid json")
		utils.WriteJSONError(w, app.MsgConfigUnavailable, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
