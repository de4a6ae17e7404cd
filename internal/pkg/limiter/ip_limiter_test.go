package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter_SameIPShareLimiter(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 1)

	first := l.GetLimiter("10.0.0.1")
	second := l.GetLimiter("10.0.0.1")
	other := l.GetLimiter("10.0.0.2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestIPRateLimiter_MiddlewareBlocksBurstOverflow(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(0.001), 2)

	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestIPRateLimiter_DistinctIPsIndependent(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(0.001), 1)

	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "ip %d must have its own bucket", i)
	}
}
