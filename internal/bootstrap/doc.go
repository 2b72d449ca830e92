// Package bootstrap resolves the runtime configuration document the client
// needs before it can talk to the backend.
//
// The document lives on the backend itself (by default at
// http://localhost:8000/config.json) and carries the backend endpoint and
// the API credential. [Loader] fetches it once, caches it, and hands out
// copies through [Loader.Get]. Concurrent first loads are coalesced into a
// single fetch; a failed fetch of any kind degrades to the built-in default
// document instead of failing the caller, so the client always ends up with
// a usable endpoint. The cache is refreshed only by an explicit
// [Loader.Reload].
package bootstrap
