// Package http implements the HTTP transport layer of the server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. The central piece is the credential gate: a middleware that checks the
// bearer credential of every protected request against the server-held master
// key and rejects misconfigured or unauthenticated calls with the agreed
// error bodies. Cross-cutting concerns such as request tracing, access
// logging, and CORS are handled in this package as well.
package http
