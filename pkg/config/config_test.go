package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.tokenscope.io/v1", c.API.BaseURL)
	assert.Equal(t, 30*time.Second, c.API.Timeout)
	assert.Equal(t, 30*time.Second, c.Fallback.Timeout)
	assert.Equal(t, "https://api.dexscreener.com", c.DexScreener.BaseURL)
	assert.Equal(t, "https://api.gopluslabs.io/api/v1", c.GoPlus.BaseURL)
	assert.Equal(t, "memory", c.Watchlist.Backend)
	assert.Equal(t, -1, c.Kafka.RequiredAcks)
	assert.False(t, c.Kafka.Enabled)
	assert.Equal(t, 100, c.Kafka.BatchSize)
	assert.Equal(t, time.Second, c.Kafka.BatchTimeout)
	assert.Equal(t, 10, c.Watchlist.Redis.PoolSize)
	assert.Equal(t, 30*time.Second, c.Watchlist.Redis.PoolTimeout)
	assert.Empty(t, c.API.Key)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: production
api:
  key: secret
  timeout: 5s
watchlist:
  backend: redis
  redis:
    addr: redis:6379
    pool_size: 32
kafka:
  enabled: true
  brokers: ["kafka:9092"]
  batch_size: 10
  batch_timeout: 20ms
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, "secret", c.API.Key)
	assert.Equal(t, 5*time.Second, c.API.Timeout)
	assert.Equal(t, "https://api.tokenscope.io/v1", c.API.BaseURL)
	assert.Equal(t, "redis:6379", c.Watchlist.Redis.Addr)
	assert.Equal(t, []string{"kafka:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "token-analyses", c.Kafka.Topic)
	assert.Equal(t, 32, c.Watchlist.Redis.PoolSize)
	assert.Equal(t, 10, c.Kafka.BatchSize)
	assert.Equal(t, 20*time.Millisecond, c.Kafka.BatchTimeout)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"unknown backend":       "watchlist:\n  backend: disk\n",
		"kafka without brokers": "kafka:\n  enabled: true\n",
		"bad base url":          "api:\n  base_url: not a url\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("TOKENSCOPE_API_KEY", "from-env")
	t.Setenv("TOKENSCOPE_TIMEOUT", "2s")
	t.Setenv("TOKENSCOPE_KAFKA_ENABLED", "true")
	t.Setenv("TOKENSCOPE_KAFKA_BROKERS", "a:9092,b:9092")

	c, err := LoadWithEnv(writeConfig(t, "api:\n  key: from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", c.API.Key)
	assert.Equal(t, 2*time.Second, c.API.Timeout)
	assert.True(t, c.Kafka.Enabled)
	assert.Equal(t, []string{"a:9092", "b:9092"}, c.Kafka.Brokers)
}
