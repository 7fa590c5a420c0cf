package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(rl *RateLimiter, trustedProxies ...string) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies(trustedProxies)
	router.Use(rl.Middleware())
	router.POST("/enhance", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func postFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	return postVia(router, ip+":1234", "")
}

func postVia(router *gin.Engine, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/enhance", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests within burst", func(t *testing.T) {
		rl := NewRateLimiter(600, 20)
		defer rl.Stop()
		router := newLimitedRouter(rl)

		for i := 0; i < 10; i++ {
			w := postFrom(router, "192.168.1.1")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "20", w.Header().Get("X-RateLimit-Limit"))
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("blocks requests exceeding burst", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)
		defer rl.Stop()
		router := newLimitedRouter(rl)

		var last *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			last = postFrom(router, "192.168.1.2")
		}

		require.Equal(t, http.StatusTooManyRequests, last.Code)
		assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, last.Header().Get("Retry-After"))
		assert.Contains(t, last.Body.String(), "Too many requests")
	})

	t.Run("different clients have separate limits", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Stop()
		router := newLimitedRouter(rl)

		assert.Equal(t, http.StatusOK, postFrom(router, "192.168.1.3").Code)
		assert.Equal(t, http.StatusOK, postFrom(router, "192.168.1.4").Code)
		assert.Equal(t, http.StatusTooManyRequests, postFrom(router, "192.168.1.3").Code)
	})
}

func TestRateLimiter_ForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("untrusted peer cannot rotate buckets", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Stop()
		router := newLimitedRouter(rl)

		assert.Equal(t, http.StatusOK, postVia(router, "203.0.113.5:1000", "1.1.1.1").Code)
		assert.Equal(t, http.StatusTooManyRequests, postVia(router, "203.0.113.5:1001", "2.2.2.2").Code)
		assert.Equal(t, http.StatusTooManyRequests, postVia(router, "203.0.113.5:1002", "3.3.3.3").Code)
	})

	t.Run("trusted proxy forwards client address", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Stop()
		router := newLimitedRouter(rl, "10.0.0.0/8")

		assert.Equal(t, http.StatusOK, postVia(router, "10.0.0.2:1000", "1.1.1.1").Code)
		assert.Equal(t, http.StatusOK, postVia(router, "10.0.0.2:1001", "2.2.2.2").Code)
		assert.Equal(t, http.StatusTooManyRequests, postVia(router, "10.0.0.3:1000", "1.1.1.1").Code)
	})
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	defer rl.Stop()

	rl.getLimiter("ip:10.0.0.1")
	rl.getLimiter("ip:10.0.0.2")

	rl.evictIdle(time.Now().Add(limiterIdleTimeout + time.Second))

	count := 0
	rl.limiters.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	assert.Zero(t, count)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
