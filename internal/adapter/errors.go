package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotAuthenticated mirrors HTTP 403: the request reached the
	// backend without any credential attached.
	ErrNotAuthenticated = errors.New("request not authenticated")
	// ErrCredentialRejected mirrors HTTP 401: a credential was presented
	// and the backend refused it.
	ErrCredentialRejected = errors.New("credential rejected")
	// ErrServerMisconfigured mirrors HTTP 500 from the credential gate:
	// the backend has no master key configured.
	ErrServerMisconfigured = errors.New("server misconfigured")
	// ErrNoEndpoint is returned when a backend client is constructed
	// without a base address. The loader's fallback document always
	// carries one, so hitting this means the client was built from
	// something other than a loaded document.
	ErrNoEndpoint = errors.New("no backend endpoint")
)

// APIError is the typed failure for a non-2xx backend response. It keeps
// the raw status code and the backend's detail message so callers can both
// branch on [errors.Is] sentinels and show the original wording.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// Unwrap maps the status code onto the package sentinels so that
// errors.Is(err, ErrCredentialRejected) and friends work across the
// transport boundary.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrCredentialRejected
	case http.StatusForbidden:
		return ErrNotAuthenticated
	case http.StatusInternalServerError:
		return ErrServerMisconfigured
	default:
		return nil
	}
}
