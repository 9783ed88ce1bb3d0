package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isbnapi/internal/platform/logger"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get("X-Request-Id"))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "abc-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))
	})
}

func TestAccessLogMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(&buf, logger.Config{Level: "info"})

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lg := logger.From(r.Context())
		lg.Info().Msg("inside handler")
		w.WriteHeader(http.StatusTeapot)
	}), RequestIDMiddleware, AccessLogMiddleware(base))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.Header.Set("X-Request-Id", "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"message":"inside handler"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"path":"/api/generate"`)
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), RequestIDMiddleware, AccessLogMiddleware(logger.New(&bytes.Buffer{}, logger.Config{})), RecoveryMiddleware)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INTERNAL_ERROR"`)
}
