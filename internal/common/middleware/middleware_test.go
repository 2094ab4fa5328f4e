package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ton-mini-app-backend/internal/common/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Recovery(), ErrorResponder(), TelegramInitData())
	return r
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	r := newTestRouter()
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestErrorResponder(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{
			name:     "database error exposes cause",
			err:      apperrors.NewDatabaseError("create user", stderrors.New("connection refused")),
			status:   http.StatusInternalServerError,
			expected: "connection refused",
		},
		{
			name:     "bad request",
			err:      apperrors.NewBadRequestError(stderrors.New("unexpected EOF")),
			status:   http.StatusBadRequest,
			expected: "unexpected EOF",
		},
		{
			name:     "plain error becomes internal",
			err:      stderrors.New("something broke"),
			status:   http.StatusInternalServerError,
			expected: "something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()
			r.POST("/fail", func(c *gin.Context) { _ = c.Error(tt.err) })

			req := httptest.NewRequest(http.MethodPost, "/fail", nil)
			req.Header.Set("X-Request-ID", "rid")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"success":false,"error":"`+tt.expected+`","request_id":"rid"}`, w.Body.String())
		})
	}
}

func TestRecovery(t *testing.T) {
	r := newTestRouter()
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	// следующий запрос обслуживается как обычно
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTelegramInitData(t *testing.T) {
	r := newTestRouter()
	r.GET("/me", func(c *gin.Context) {
		u, ok := TelegramUser(c)
		if !ok {
			c.String(http.StatusOK, "none")
			return
		}
		c.String(http.StatusOK, u.Username)
	})

	raw := "user=" + url.QueryEscape(`{"id":123,"first_name":"B","last_name":"C","username":"a"}`) +
		"&auth_date=1700000000&hash=deadbeef"

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(InitDataHeader, raw)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, "none", w.Body.String())
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}
