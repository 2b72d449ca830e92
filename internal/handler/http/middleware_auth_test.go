package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-gate/internal/app"
	"github.com/MKhiriev/go-config-gate/internal/logger"
	"github.com/MKhiriev/go-config-gate/internal/utils"
	"github.com/MKhiriev/go-config-gate/models"
)

// ---- Helpers ----

func newGateHandler(masterKey string) *Handler {
	return &Handler{
		masterAPIKey: masterKey,
		logger:       logger.Nop(),
	}
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Detail
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer credential",
			header:    "Bearer my-api-key",
			wantToken: "my-api-key",
		},
		{
			name:    "missing credential part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- credential gate table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	const masterKey = "super-secret-key"

	tests := []struct {
		name           string
		masterKey      string
		authHeader     string
		expectedStatus int
		expectedDetail string
		nextCalled     bool
	}{
		{
			name:           "valid credential → 200, next called",
			masterKey:      masterKey,
			authHeader:     "Bearer super-secret-key",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "wrong credential → 401",
			masterKey:      masterKey,
			authHeader:     "Bearer wrong-token",
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: app.MsgInvalidToken,
		},
		{
			name:           "no Authorization header → 403",
			masterKey:      masterKey,
			authHeader:     "",
			expectedStatus: http.StatusForbidden,
			expectedDetail: app.MsgNotAuthenticated,
		},
		{
			name:           "header without credential part → 403",
			masterKey:      masterKey,
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusForbidden,
			expectedDetail: app.MsgNotAuthenticated,
		},
		{
			name:           "empty credential part → 403",
			masterKey:      masterKey,
			authHeader:     "Bearer ",
			expectedStatus: http.StatusForbidden,
			expectedDetail: app.MsgNotAuthenticated,
		},
		{
			name:           "master key not set → 500 even with valid-looking header",
			masterKey:      "",
			authHeader:     "Bearer super-secret-key",
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: app.MsgServerNotConfigured,
		},
		{
			name:           "master key not set and no header → 500, not 403",
			masterKey:      "",
			authHeader:     "",
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: app.MsgServerNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newGateHandler(tt.masterKey)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
			}
		})
	}
}

// ---- Тело ответа при ошибках ----

func TestAuth_ErrorResponsesAreJSON(t *testing.T) {
	h := newGateHandler("master-key")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer nope", next)

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"Invalid or expired token"}`, rr.Body.String())
}

// ---- Проверка секрета идёт раньше разбора заголовка ----

func TestAuth_MisconfigurationCheckedBeforeHeader(t *testing.T) {
	h := newGateHandler("")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be called")
	})

	for _, header := range []string{"", "Bearer anything", "garbage"} {
		rr := executeAuth(h, header, next)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, app.MsgServerNotConfigured, decodeDetail(t, rr))
	}
}

// ---- Успешный исход кладётся в контекст ----

func TestAuth_OutcomeInContext(t *testing.T) {
	h := newGateHandler("master-key")

	var gotOutcome models.AuthOutcome
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOutcome, found = utils.GetAuthOutcomeFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer master-key", next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, found)
	assert.Equal(t, models.OutcomeAuthenticated, gotOutcome)
}

// ---- Оригинальный контекст не мутируется ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newGateHandler("master-key")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer master-key")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}

// ---- Секрет не попадает в логи ----

func TestAuth_CredentialNeverLogged(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	h := &Handler{masterAPIKey: "super-secret-key", logger: log}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	send := func(header string) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = req.WithContext(log.WithContext(req.Context()))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)
	}

	send("Bearer super-secret-key")
	send("Bearer wrong-token")
	send("")

	logged := buf.String()
	assert.NotContains(t, logged, "super-secret-key")
	assert.NotContains(t, logged, "wrong-token")
}

// ---- Concurrent requests — нет гонок ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newGateHandler("concurrent-key")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-key")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
