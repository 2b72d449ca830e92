// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"context"

	"github.com/MKhiriev/go-config-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_source_mock.go -package=mock

// DocumentSource fetches the raw configuration document from wherever it is
// published. Implementations own transport and decoding; [Loader] owns
// caching and the fallback policy.
type DocumentSource interface {
	// FetchDocument retrieves and decodes the configuration document.
	// A transport failure, a non-2xx response, or a malformed body is
	// reported as an error.
	FetchDocument(ctx context.Context) (models.ConfigDocument, error)
}
