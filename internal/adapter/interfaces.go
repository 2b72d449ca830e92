// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the backend.
//
// It ships two pieces: [ConfigDocumentSource], which fetches the public
// configuration document during bootstrap, and [BackendClient], which talks
// to the protected API with the credential taken from that document.
//
// Non-2xx responses surface as [*APIError] carrying the HTTP status and the
// backend's detail message; [errors.Is] against the sentinel values in
// errors.go gives transport-agnostic handling (e.g. [ErrCredentialRejected]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-config-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_client_mock.go -package=mock

// BackendClient defines the authenticated surface of the backend API.
// Implementations attach the credential, serialise requests, and map
// transport-level failures to the error values defined in this package.
type BackendClient interface {
	// Hello calls the protected hello endpoint and returns the greeting.
	// The backend only answers it for a valid credential, which makes it
	// the canonical end-to-end authentication check.
	Hello(ctx context.Context) (models.HelloResponse, error)

	// FetchProtected issues a GET against the given path (relative to the
	// backend endpoint) with the credential attached and decodes the JSON
	// response into out. A nil out discards the body. Returns [*APIError]
	// for non-2xx responses; the request is never retried.
	FetchProtected(ctx context.Context, path string, out any) error
}
