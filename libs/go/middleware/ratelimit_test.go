package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *RateLimiter, userID *uuid.UUID) *gin.Engine {
	router := gin.New()
	router.Use(CorrelationIDMiddleware())
	if userID != nil {
		router.Use(func(c *gin.Context) { c.Set("userID", *userID) })
	}
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func doRequest(router *gin.Engine, path, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":1234"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests within burst", func(t *testing.T) {
		rl := NewRateLimiter(10, 20)
		defer rl.Stop()
		router := newLimitedRouter(rl, nil)

		for i := 0; i < 10; i++ {
			w := doRequest(router, "/test", "192.168.1.1")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
		}
	})

	t.Run("blocks requests over the burst", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)
		defer rl.Stop()
		router := newLimitedRouter(rl, nil)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			codes = append(codes, doRequest(router, "/test", "192.168.1.2").Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

		w := doRequest(router, "/test", "192.168.1.2")
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "correlation_id")
	})

	t.Run("clients have separate buckets", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Stop()
		router := newLimitedRouter(rl, nil)

		assert.Equal(t, http.StatusOK, doRequest(router, "/test", "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, doRequest(router, "/test", "10.0.0.2").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "/test", "10.0.0.1").Code)
	})

	t.Run("authenticated users keyed by id across ips", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Stop()
		userID := uuid.New()
		router := newLimitedRouter(rl, &userID)

		assert.Equal(t, http.StatusOK, doRequest(router, "/test", "10.0.0.3").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "/test", "10.0.0.4").Code)
	})

	t.Run("health is exempt", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Stop()
		router := newLimitedRouter(rl, nil)

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, doRequest(router, "/health", "10.0.0.5").Code)
		}
	})
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	rl.getLimiter("ip:stale")
	rl.getLimiter("ip:fresh")
	if v, ok := rl.limiters.Load("ip:stale"); ok {
		v.(*limiterEntry).lastAccess = time.Now().Add(-time.Hour)
	}

	rl.evictIdle(time.Now())

	_, staleFound := rl.limiters.Load("ip:stale")
	_, freshFound := rl.limiters.Load("ip:fresh")
	assert.False(t, staleFound)
	assert.True(t, freshFound)
}
