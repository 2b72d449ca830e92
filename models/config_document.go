// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// JSON keys of the two contractual fields of a configuration document.
// Every other key is treated as an opaque pass-through value.
const (
	configKeyEndpoint   = "endpoint"
	configKeyCredential = "credential"
)

// ConfigDocument is the runtime-loaded configuration of the client: the set of
// deployment-specific settings fetched from a well-known path at process start,
// as opposed to anything embedded into the binary at build time.
//
// Only two fields are contractual: the backend endpoint base address and the
// access credential presented on every protected call. The document schema is
// otherwise open; unknown keys survive a load/serialize round trip untouched
// via Extra.
//
// A document is never mutated after it has been loaded. Code that holds a
// ConfigDocument must treat Extra values as read-only.
type ConfigDocument struct {
	// Endpoint is the base address of the protected backend,
	// e.g. "http://localhost:8000". Required; the loader substitutes a
	// default when the fetched document leaves it empty.
	Endpoint string

	// Credential is the opaque pre-shared bearer credential presented on
	// every call to the protected backend. Compared by the server with
	// exact equality; carries no structure, expiry, or rotation semantics.
	Credential string

	// Extra holds every document key other than the two contractual ones,
	// exactly as received. Nil when the document contains no extra keys.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON decodes a configuration document, splitting the two
// contractual string fields from the opaque remainder.
//
// A document whose "endpoint" or "credential" value is present but not a JSON
// string is malformed and yields an error; missing keys simply leave the
// corresponding field empty.
func (d *ConfigDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding config document: %w", err)
	}

	doc := ConfigDocument{}
	if v, ok := raw[configKeyEndpoint]; ok {
		if err := json.Unmarshal(v, &doc.Endpoint); err != nil {
			return fmt.Errorf("config document key %q is not a string: %w", configKeyEndpoint, err)
		}
		delete(raw, configKeyEndpoint)
	}
	if v, ok := raw[configKeyCredential]; ok {
		if err := json.Unmarshal(v, &doc.Credential); err != nil {
			return fmt.Errorf("config document key %q is not a string: %w", configKeyCredential, err)
		}
		delete(raw, configKeyCredential)
	}
	if len(raw) > 0 {
		doc.Extra = raw
	}

	*d = doc
	return nil
}

// MarshalJSON serializes the document back into a single flat JSON object:
// the two contractual keys plus every Extra key unchanged.
func (d ConfigDocument) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.Extra)+2)
	for key, value := range d.Extra {
		out[key] = value
	}

	endpoint, err := json.Marshal(d.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("error encoding config document endpoint: %w", err)
	}
	credential, err := json.Marshal(d.Credential)
	if err != nil {
		return nil, fmt.Errorf("error encoding config document credential: %w", err)
	}
	out[configKeyEndpoint] = endpoint
	out[configKeyCredential] = credential

	return json.Marshal(out)
}

// Clone returns a copy of the document whose Extra map is independent of the
// receiver's. The loader hands out clones so that no caller can reach into
// the cached document.
func (d ConfigDocument) Clone() ConfigDocument {
	clone := ConfigDocument{
		Endpoint:   d.Endpoint,
		Credential: d.Credential,
	}
	if d.Extra != nil {
		clone.Extra = make(map[string]json.RawMessage, len(d.Extra))
		for key, value := range d.Extra {
			clone.Extra[key] = value
		}
	}
	return clone
}

// HasCredential reports whether the document carries a non-empty credential.
func (d ConfigDocument) HasCredential() bool {
	return d.Credential != ""
}
