package di

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"student-registration-service/internal/config"
)

func loadConfig(t *testing.T) *config.Config {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestNewContainer_WithoutRateLimit(t *testing.T) {
	c, err := NewContainer(context.Background(), loadConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Nil(t, c.RedisClient)
	assert.False(t, c.RateLimiter.Enabled())
	assert.NotNil(t, c.Store)
	assert.NotNil(t, c.GinHandler)
	assert.NotNil(t, c.Health)
}

func TestNewContainer_WithRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := loadConfig(t)
	cfg.RateLimit.Enabled = true
	cfg.Redis.Host = mr.Host()
	cfg.Redis.Port = mr.Port()

	c, err := NewContainer(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.NotNil(t, c.RedisClient)
	assert.True(t, c.RateLimiter.Enabled())
	assert.NoError(t, c.Close())
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := loadConfig(t)
	cfg.App.HTTPPort = "not-a-port"

	_, err := NewContainer(context.Background(), cfg, zaptest.NewLogger(t))

	assert.ErrorContains(t, err, "config validation failed")
}
