package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"student-registration-service/internal/adapter/ratelimit"
	"student-registration-service/pkg/logger"
)

func newEngine(t *testing.T, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	return r
}

func TestRequestID(t *testing.T) {
	t.Run("Generates ID", func(t *testing.T) {
		r := newEngine(t, RequestID())
		var seen string
		r.GET("/ping", func(c *gin.Context) {
			seen = logger.GetRequestID(c.Request.Context())
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		header := w.Header().Get(logger.RequestIDHeader)
		_, err := uuid.Parse(header)
		assert.NoError(t, err)
		assert.Equal(t, header, seen)
	})

	t.Run("Echoes Client ID", func(t *testing.T) {
		r := newEngine(t, RequestID())
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(logger.RequestIDHeader, "client-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "client-id", w.Header().Get(logger.RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	log := zaptest.NewLogger(t)
	r := newEngine(t, Recovery(log), Logger(log))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestRateLimiter(t *testing.T) {
	log := zaptest.NewLogger(t)

	t.Run("Disabled Passes Through", func(t *testing.T) {
		limiter := ratelimit.New(nil, ratelimit.Config{}, log)
		r := newEngine(t, RateLimiter(limiter, log))
		r.GET("/api/users", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Rejects Over Budget", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		limiter := ratelimit.New(client, ratelimit.Config{
			Enabled:           true,
			RequestsPerSecond: 0.001,
			BurstCapacity:     1,
		}, log)
		r := newEngine(t, RateLimiter(limiter, log))
		r.DELETE("/api/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/users/1", nil))
		require.Equal(t, http.StatusOK, w.Code)

		// Same route template, different id: same bucket
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/users/2", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	})

	t.Run("Fails Open", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
		t.Cleanup(func() { _ = client.Close() })
		mr.Close()

		limiter := ratelimit.New(client, ratelimit.Config{Enabled: true, RequestsPerSecond: 1, BurstCapacity: 1}, log)
		r := newEngine(t, RateLimiter(limiter, log))
		r.GET("/api/users", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
