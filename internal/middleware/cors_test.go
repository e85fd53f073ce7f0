package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tutor-catalog/backend/internal/middleware"
)

const devOrigin = "http://localhost:5173"

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tutors", nil)
	req.Header.Set("Origin", devOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_Preflight covers every mutating method the API exposes.
// Browsers send Access-Control-Request-Headers in lowercase and rs/cors
// compares verbatim, so the test does too.
func TestCORSHandler_Preflight(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/tutors/abc", nil)
			req.Header.Set("Origin", devOrigin)
			req.Header.Set("Access-Control-Request-Method", method)
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
				"expected 2xx for OPTIONS preflight, got %d", rec.Code)
			assert.Equal(t, devOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), method)
		})
	}
}

func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{devOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tutors", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
