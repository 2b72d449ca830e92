package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// NewHTTPClient creates a resty.Client configured the way every outbound
// client in this module needs it: a normalized base URL (no trailing slash)
// and a per-request timeout.
//
// A non-positive timeout disables resty's timeout entirely; callers are then
// expected to bound requests through their context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/"))

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return client
}
