// Package config assembles the process configuration of both binaries:
// the server's listen address, master API key, CORS origins and served
// document path, and the client's bootstrap knobs (config URL, load and
// request timeouts).
//
// Values come from several sources merged field by field; the first
// non-zero value wins:
//  1. Environment variables (MASTER_API_KEY, SERVER_*, CORS_*, BOOTSTRAP_*)
//  2. Command-line flags
//  3. JSON config file (named by CONFIG or -c)
//  4. Built-in defaults
//
// [GetStructuredConfig] produces the server's view, [GetClientConfig]
// the client's.
package config
