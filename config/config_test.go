package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/chatstreams/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultHost, cfg.Gateway.Host)
	assert.Equal(t, DefaultPort, cfg.Gateway.Port)
	assert.Equal(t, DefaultCacheSize, cfg.Session.CacheSize)
	assert.Equal(t, DefaultBufferSize, cfg.Session.BufferSize)
	assert.Equal(t, DefaultConnectTimeout, cfg.Gateway.ConnectTimeout)
}

func TestParse(t *testing.T) {
	input := `
gateway:
  host: chat.example.com
  port: 9443
  authKey: secret
  botQQ: 12345
  tls: true
  pingInterval: 15s
session:
  cacheSize: 1024
retry:
  maxAttempts: 3
  initialDelay: 1s
`
	cfg, err := Parse([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, "chat.example.com", cfg.Gateway.Host)
	assert.Equal(t, 9443, cfg.Gateway.Port)
	assert.Equal(t, "secret", cfg.Gateway.AuthKey)
	assert.EqualValues(t, 12345, cfg.Gateway.BotQQ)
	assert.True(t, cfg.Gateway.TLS)
	assert.Equal(t, 15*time.Second, cfg.Gateway.PingInterval)

	// Unset fields keep their defaults.
	assert.Equal(t, 1024, cfg.Session.CacheSize)
	assert.Equal(t, DefaultBufferSize, cfg.Session.BufferSize)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Retry.InitialDelay)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("gateway: [not a map"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Gateway.AuthKey = "k"
		cfg.Gateway.BotQQ = 1
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing host", mutate: func(c *Config) { c.Gateway.Host = "" }},
		{name: "port out of range", mutate: func(c *Config) { c.Gateway.Port = 70000 }},
		{name: "zero port", mutate: func(c *Config) { c.Gateway.Port = 0 }},
		{name: "missing auth key", mutate: func(c *Config) { c.Gateway.AuthKey = "" }},
		{name: "invalid bot account", mutate: func(c *Config) { c.Gateway.BotQQ = 0 }},
		{name: "zero cache size", mutate: func(c *Config) { c.Session.CacheSize = 0 }},
		{name: "zero buffer size", mutate: func(c *Config) { c.Session.BufferSize = 0 }},
		{name: "negative retry attempts", mutate: func(c *Config) { c.Retry.MaxAttempts = -1 }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err), "validation failures classify as invalid: %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("gateway:\n  authKey: k\n  botQQ: 7\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.Gateway.AuthKey)
	assert.Equal(t, DefaultHost, cfg.Gateway.Host)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHATSTREAMS_HOST", "override.example.com")
	t.Setenv("CHATSTREAMS_PORT", "9000")
	t.Setenv("CHATSTREAMS_AUTH_KEY", "envkey")
	t.Setenv("CHATSTREAMS_BOT_QQ", "55")

	cfg, err := Parse([]byte("gateway:\n  authKey: filekey\n  botQQ: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, "override.example.com", cfg.Gateway.Host)
	assert.Equal(t, 9000, cfg.Gateway.Port)
	assert.Equal(t, "envkey", cfg.Gateway.AuthKey)
	assert.EqualValues(t, 55, cfg.Gateway.BotQQ)
}

func TestGatewayURL(t *testing.T) {
	g := GatewayConfig{Host: "h", Port: 8080}
	assert.Equal(t, "ws://h:8080", g.URL())

	g.TLS = true
	assert.Equal(t, "wss://h:8080", g.URL())
}
