// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the shared wire-level message strings of the
// config-gate protocol.
//
// The Msg* constants are the exact bodies and detail strings both sides of
// the protocol agree on: the server writes them into responses, the client
// recognises them in rejections, and tests on both sides assert against
// them. Keeping them in one place ensures the wording never drifts between
// the gate and the client.
package app

const (
	// MsgHello is the greeting returned by the protected hello endpoint
	// once a request has passed the credential gate.
	MsgHello = "hello from backend"

	// MsgNotAuthenticated is the detail string of a 403 response: the
	// request presented no usable bearer credential at all.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidToken is the detail string of a 401 response: a credential
	// was presented but does not match the server-held secret.
	MsgInvalidToken = "Invalid or expired token"

	// MsgServerNotConfigured is the detail string of a 500 response: the
	// server itself has no secret configured, so no credential could have
	// been accepted. Deliberately names the missing variable so operators
	// can tell a server fault from a bad caller.
	MsgServerNotConfigured = "Server not properly configured: MASTER_API_KEY is not set"

	// MsgNotFound is the detail string of a 404 response. It is used both
	// for unknown paths and for known paths hit with an unsupported HTTP
	// method, so the route table is not revealed through 405 responses.
	MsgNotFound = "Not Found"

	// MsgConfigUnavailable is the detail string returned by the config
	// document endpoint when the published document cannot be read.
	MsgConfigUnavailable = "Config document unavailable"
)
