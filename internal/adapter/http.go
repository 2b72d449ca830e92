package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-config-gate/internal/logger"
	"github.com/MKhiriev/go-config-gate/internal/utils"
	"github.com/MKhiriev/go-config-gate/models"
)

const defaultBackendTimeout = 15 * time.Second

// BackendConfig carries everything needed to construct a [BackendClient].
// BaseURL and Credential normally come straight from the fetched
// configuration document, never from build-time constants.
type BackendConfig struct {
	BaseURL    string
	Credential string
	Timeout    time.Duration
}

type httpBackendClient struct {
	client     *resty.Client
	credential string

	logger *logger.Logger
}

// NewBackendClient constructs an HTTP implementation of [BackendClient].
// It normalises and validates cfg.BaseURL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewBackendClient(cfg BackendConfig, log *logger.Logger) (BackendClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend address: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultBackendTimeout
	}

	return &httpBackendClient{
		client:     utils.NewHTTPClient(baseURL, cfg.Timeout),
		credential: strings.TrimSpace(cfg.Credential),
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoEndpoint
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Hello implements [BackendClient]. It GETs /api/hello with the credential
// attached and decodes the greeting.
func (h *httpBackendClient) Hello(ctx context.Context) (models.HelloResponse, error) {
	var hello models.HelloResponse
	if err := h.FetchProtected(ctx, "api/hello", &hello); err != nil {
		return models.HelloResponse{}, err
	}

	return hello, nil
}

// FetchProtected implements [BackendClient]. The path is joined to the
// backend endpoint with exactly one slash regardless of leading slashes in
// path.
func (h *httpBackendClient) FetchProtected(ctx context.Context, path string, out any) error {
	path = "/" + strings.TrimLeft(path, "/")
	h.logger.Debug().Str("path", path).Msg("backend request")

	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("backend request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out != nil {
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode backend response %s: %w", path, err)
		}
	}

	return nil
}

func (h *httpBackendClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.credential != "" {
		req.SetHeader("Authorization", "Bearer "+h.credential)
	}
	return req
}
