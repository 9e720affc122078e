package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libris/catalog-api/internal/api/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(1, 3)
	handler := limiter.Handler(okHandler())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
		req.RemoteAddr = "10.0.0.1:50000"
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst should pass", i+1)
	}
}

func TestRateLimiterBlocksOverBurst(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(1, 1)
	handler := limiter.Handler(okHandler())

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.RemoteAddr = "10.0.0.2:50000"
	handler.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.RemoteAddr = "10.0.0.2:50001"
	handler.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "Rate limit exceeded")
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(1, 1)
	handler := limiter.Handler(okHandler())

	// Exhaust the first client's budget.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.RemoteAddr = "10.0.0.3:50000"
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A different client still gets through.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.RemoteAddr = "10.0.0.4:50000"
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
