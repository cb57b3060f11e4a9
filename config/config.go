// Package config loads and validates client configuration from YAML, with
// environment variable overrides for deployment settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360/chatstreams/chat"
	"github.com/c360/chatstreams/errors"
)

// Default connection settings.
const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 8080
	DefaultCacheSize      = 4096
	DefaultBufferSize     = 256
	DefaultConnectTimeout = 10 * time.Second
	DefaultPingInterval   = 30 * time.Second
)

// Config is the complete client configuration.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Session SessionConfig `yaml:"session"`
	Retry   RetryConfig   `yaml:"retry"`
}

// GatewayConfig describes how to reach the chat gateway.
type GatewayConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	AuthKey        string        `yaml:"authKey"`
	BotQQ          chat.UserID   `yaml:"botQQ"`
	TLS            bool          `yaml:"tls"`
	ConnectTimeout time.Duration `yaml:"connectTimeout"`
	PingInterval   time.Duration `yaml:"pingInterval"`
}

// SessionConfig tunes per-session behavior.
type SessionConfig struct {
	// CacheSize is the gateway-side message cache size requested at bind.
	CacheSize int `yaml:"cacheSize"`
	// BufferSize is the capacity of the local inbound event buffer. When
	// the buffer is full the oldest events are dropped first.
	BufferSize int `yaml:"bufferSize"`
}

// RetryConfig tunes reconnection behavior after a dropped connection.
type RetryConfig struct {
	MaxAttempts  int           `yaml:"maxAttempts"`
	InitialDelay time.Duration `yaml:"initialDelay"`
	MaxDelay     time.Duration `yaml:"maxDelay"`
}

// Default returns a configuration with all defaults applied, suitable for a
// local development gateway.
func Default() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Host:           DefaultHost,
			Port:           DefaultPort,
			ConnectTimeout: DefaultConnectTimeout,
			PingInterval:   DefaultPingInterval,
		},
		Session: SessionConfig{
			CacheSize:  DefaultCacheSize,
			BufferSize: DefaultBufferSize,
		},
		Retry: RetryConfig{
			MaxAttempts:  10,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     30 * time.Second,
		},
	}
}

// Load reads a YAML config file, fills unset fields with defaults, applies
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "config", "Load", "read config file")
	}
	return Parse(data)
}

// Parse decodes YAML config bytes. See Load.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Parse", "decode yaml")
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets deployment environments override connection
// settings without editing the config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CHATSTREAMS_HOST"); v != "" {
		c.Gateway.Host = v
	}
	if v := os.Getenv("CHATSTREAMS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Gateway.Port = port
		}
	}
	if v := os.Getenv("CHATSTREAMS_AUTH_KEY"); v != "" {
		c.Gateway.AuthKey = v
	}
	if v := os.Getenv("CHATSTREAMS_BOT_QQ"); v != "" {
		if qq, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Gateway.BotQQ = chat.UserID(qq)
		}
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Gateway.Host == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "config", "Validate", "gateway host is required")
	}
	if c.Gateway.Port <= 0 || c.Gateway.Port > 65535 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: port %d out of range", errors.ErrInvalidConfig, c.Gateway.Port),
			"config", "Validate", "check gateway port")
	}
	if c.Gateway.AuthKey == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "config", "Validate", "gateway authKey is required")
	}
	if !c.Gateway.BotQQ.IsValid() {
		return errors.WrapInvalid(
			fmt.Errorf("%w: botQQ %d", errors.ErrInvalidConfig, c.Gateway.BotQQ),
			"config", "Validate", "check bot account")
	}
	if c.Session.CacheSize <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: cacheSize must be positive", errors.ErrInvalidConfig),
			"config", "Validate", "check session cache size")
	}
	if c.Session.BufferSize <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: bufferSize must be positive", errors.ErrInvalidConfig),
			"config", "Validate", "check session buffer size")
	}
	if c.Retry.MaxAttempts < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: maxAttempts cannot be negative", errors.ErrInvalidConfig),
			"config", "Validate", "check retry attempts")
	}
	return nil
}

// URL returns the websocket endpoint for the configured gateway.
func (g GatewayConfig) URL() string {
	scheme := "ws"
	if g.TLS {
		scheme = "wss"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, g.Host, g.Port)
}
