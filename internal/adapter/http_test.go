// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-gate/internal/logger"
)

// newTestBackendClient создаёт httpBackendClient, направленный на тестовый сервер
func newTestBackendClient(t *testing.T, serverURL, credential string) *httpBackendClient {
	t.Helper()

	c, err := NewBackendClient(BackendConfig{
		BaseURL:    serverURL,
		Credential: credential,
	}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpBackendClient)
}

// ── Hello ────────────────────────────────────────────────────────────────────

func TestHello_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/hello", r.URL.Path)
		assert.Equal(t, "Bearer super-secret-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"hello from backend","authenticated":true}`))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL, "super-secret-key")
	got, err := c.Hello(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "hello from backend", got.Message)
	assert.True(t, got.Authenticated)
}

func TestHello_InvalidCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL, "wrong-token")
	_, err := c.Hello(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredentialRejected)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid or expired token", apiErr.Detail)
}

func TestHello_NoCredentialSendsNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// без учётных данных заголовок не отправляется вовсе
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL, "")
	_, err := c.Hello(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestHello_ServerMisconfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Server not properly configured: MASTER_API_KEY is not set"}`))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL, "super-secret-key")
	_, err := c.Hello(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerMisconfigured)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Server not properly configured: MASTER_API_KEY is not set", apiErr.Detail)
}

// ── FetchProtected ───────────────────────────────────────────────────────────

func TestFetchProtected_JoinsPathWithSingleSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL+"/", "super-secret-key")

	for _, path := range []string{"api/hello", "/api/hello", "//api/hello"} {
		err := c.FetchProtected(context.Background(), path, nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/hello", gotPath, "path %q", path)
	}
}

func TestFetchProtected_DecodesInto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL, "super-secret-key")

	var out map[string]string
	err := c.FetchProtected(context.Background(), "api/status", &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out["status"])
}

func TestFetchProtected_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{broken`))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL, "super-secret-key")

	var out map[string]string
	err := c.FetchProtected(context.Background(), "api/status", &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode backend response")
}

func TestFetchProtected_PlainTextErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL, "super-secret-key")
	err := c.FetchProtected(context.Background(), "api/hello", nil)

	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Detail)
}

func TestFetchProtected_NeverRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	}))
	defer srv.Close()

	c := newTestBackendClient(t, srv.URL, "super-secret-key")
	err := c.FetchProtected(context.Background(), "api/hello", nil)

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchProtected_CredentialNeverLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	c, err := NewBackendClient(BackendConfig{
		BaseURL:    srv.URL,
		Credential: "super-secret-key",
	}, &logger.Logger{Logger: zerolog.New(&buf)})
	require.NoError(t, err)

	_, err = c.Hello(context.Background())
	require.Error(t, err)

	// в журнале есть записи о запросе, но ни следа значения учётных данных
	assert.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), "super-secret-key")
	assert.NotContains(t, buf.String(), "Bearer")
}

// ── errors ───────────────────────────────────────────────────────────────────

func TestAPIError_UnknownStatusHasNoSentinel(t *testing.T) {
	err := &APIError{StatusCode: http.StatusTeapot, Detail: "short and stout"}

	assert.False(t, errors.Is(err, ErrCredentialRejected))
	assert.False(t, errors.Is(err, ErrNotAuthenticated))
	assert.False(t, errors.Is(err, ErrServerMisconfigured))
	assert.Equal(t, "backend returned 418: short and stout", err.Error())
}

// ── NewBackendClient ─────────────────────────────────────────────────────────

func TestNewBackendClient_RequiresEndpoint(t *testing.T) {
	_, err := NewBackendClient(BackendConfig{Credential: "super-secret-key"}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEndpoint)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8000", "http://localhost:8000", false},
		{"no scheme", "localhost:8000", "http://localhost:8000", false},
		{"trailing slash", "http://localhost:8000/", "http://localhost:8000", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
