package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/pump-maintenance/internal/config"
	"github.com/iliyamo/pump-maintenance/internal/middleware"
)

func limiterFixture(t *testing.T, cfg config.RateLimitConfig, rdb *redis.Client) func() int {
	t.Helper()
	e := echo.New()
	mw := middleware.NewTokenBucket(cfg, rdb)
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	return func() int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h(c))
		return rec.Code
	}
}

func TestTokenBucketBlocksWhenExhausted(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Hour, // no refill during the test
		TTL:            time.Hour,
		Prefix:         "rl",
	}
	do := limiterFixture(t, cfg, rdb)

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}

func TestTokenBucketDisabledIsNoop(t *testing.T) {
	do := limiterFixture(t, config.RateLimitConfig{Enabled: false}, nil)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, do())
	}
}

func TestTokenBucketFailsOpenWithoutRedis(t *testing.T) {
	// A configured limiter pointed at a dead Redis must not block traffic.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})
	t.Cleanup(func() { rdb.Close() })

	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            time.Hour,
		Prefix:         "rl",
	}
	do := limiterFixture(t, cfg, rdb)

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusOK, do())
}
