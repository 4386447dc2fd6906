package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.Server.TLSEnabled())
	assert.Equal(t, "1", cfg.Auction.ID)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Second, cfg.Lock.Lease)
	assert.Equal(t, 10*time.Millisecond, cfg.Lock.RetryInterval)
	assert.Equal(t, 5*time.Second, cfg.Lock.MaxWait)
	assert.Equal(t, 0, cfg.Lock.MaxAttempts)
	assert.Equal(t, "auction.events", cfg.RabbitMQ.Exchange)
	assert.Equal(t, 100, cfg.Relay.BatchSize)
	assert.Equal(t, []string{"R-1", "R-2", "P-3", "P-4"}, cfg.Simulator.Paddles)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BID_ENVIRONMENT", "Production")
	t.Setenv("BID_LOG_LEVEL", "debug")
	t.Setenv("BID_REDIS_ADDR", "redis:6380")
	t.Setenv("BID_REDIS_DB", "2")
	t.Setenv("BID_REDIS_KEY_PREFIX", "staging:")
	t.Setenv("BID_LOCK_LEASE", "2s")
	t.Setenv("BID_LOCK_MAX_WAIT", "250ms")
	t.Setenv("BID_LOCK_MAX_ATTEMPTS", "40")
	t.Setenv("BID_AUCTION_ID", "spring-sale")
	t.Setenv("BID_TRACING_ENABLED", "true")
	t.Setenv("BID_SIMULATOR_PADDLES", "A,B")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Environment)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "staging:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 2*time.Second, cfg.Lock.Lease)
	assert.Equal(t, 250*time.Millisecond, cfg.Lock.MaxWait)
	assert.Equal(t, 40, cfg.Lock.MaxAttempts)
	assert.Equal(t, "spring-sale", cfg.Auction.ID)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, []string{"A", "B"}, cfg.Simulator.Paddles)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown environment", env: map[string]string{"BID_ENVIRONMENT": "staging"}},
		{name: "bad log level", env: map[string]string{"BID_LOG_LEVEL": "loud"}},
		{name: "zero lease", env: map[string]string{"BID_LOCK_LEASE": "0s"}},
		{name: "unbounded wait", env: map[string]string{"BID_LOCK_MAX_WAIT": "0s", "BID_LOCK_MAX_ATTEMPTS": "0"}},
		{name: "half tls", env: map[string]string{"BID_SERVER_TLS_CERT": "cert.pem"}},
		{name: "empty batch", env: map[string]string{"BID_RELAY_BATCH_SIZE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(Development, "warn")
	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))

	logger, err = NewLogger(Production, "debug")
	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	logger, err = NewLogger(Test, "debug")
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))

	_, err = NewLogger("staging", "info")
	assert.Error(t, err)

	_, err = NewLogger(Development, "verbose")
	assert.Error(t, err)
}
