// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the two bootstrap phases into a single process lifecycle: first
// the configuration document is fetched from the well-known URL (or the
// fail-closed fallback takes its place), then an authenticated backend
// client is built from the document's endpoint and credential and the
// protected hello endpoint is called.
package client
