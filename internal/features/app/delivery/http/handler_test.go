package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ton-mini-app-backend/internal/features/app/models"
)

type checkFunc func(ctx context.Context) error

func (f checkFunc) HealthCheck(ctx context.Context) error { return f(ctx) }

func setupRouter(checks map[string]HealthChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	manifest := models.NewManifest("https://ton-mini-app-backend.onrender.com", "TON Mystery Cases", "https://ton.org/icon.png")
	NewAppHandler(manifest, checks).RegisterRoutes(r)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestManifest(t *testing.T) {
	w := do(setupRouter(nil), http.MethodGet, "/tonconnect-manifest.json", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var doc map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	for _, field := range []string{"name", "url", "iconUrl", "termsOfUseUrl", "privacyPolicyUrl"} {
		assert.NotEmpty(t, doc[field], field)
	}
	assert.Equal(t, "https://ton-mini-app-backend.onrender.com/terms", doc["termsOfUseUrl"])
	assert.Equal(t, "https://ton-mini-app-backend.onrender.com/privacy", doc["privacyPolicyUrl"])
}

func TestRoot(t *testing.T) {
	w := do(setupRouter(nil), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","message":"TON Mini App Backend is working!"}`, w.Body.String())
}

func TestStaticText(t *testing.T) {
	r := setupRouter(nil)

	tests := []struct {
		path string
		body string
	}{
		{"/terms", "Terms of Service"},
		{"/privacy", "Privacy Policy"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestCheckTransaction(t *testing.T) {
	r := setupRouter(nil)

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"unknown id", `{"transactionId":"never-seen-before"}`, `{"success":true,"status":"completed","transactionId":"never-seen-before"}`},
		{"empty id", `{"transactionId":""}`, `{"success":true,"status":"completed","transactionId":""}`},
		{"numeric id", `{"transactionId":42}`, `{"success":true,"status":"completed","transactionId":42}`},
		{"missing id", `{}`, `{"success":true,"status":"completed","transactionId":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/check-transaction", tt.body)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expected, w.Body.String())
		})
	}
}

func TestReady(t *testing.T) {
	ok := checkFunc(func(context.Context) error { return nil })
	down := checkFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") })

	w := do(setupRouter(map[string]HealthChecker{"postgres": ok, "redis": ok}), http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(setupRouter(map[string]HealthChecker{"postgres": down}), http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "postgres unavailable")
}

func TestHealth(t *testing.T) {
	w := do(setupRouter(nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
