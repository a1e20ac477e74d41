package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Bridge transports understood by the UI process
const (
	TransportHTTP  = "http"
	TransportWS    = "ws"
	TransportLocal = "local"
)

// Config holds the privileged process configuration.
type Config struct {
	Server     ServerConfig
	Bridge     BridgeConfig
	Filesystem FilesystemConfig
	Logging    LogConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// BridgeConfig holds command bridge settings.
type BridgeConfig struct {
	// Token, when set, must be presented by every bridge client
	Token          string `envconfig:"BRIDGE_TOKEN"`
	MaxMessageSize int    `envconfig:"BRIDGE_MAX_MESSAGE" default:"65536"`
}

// FilesystemConfig holds filesystem access layer settings.
type FilesystemConfig struct {
	// Workers bounds concurrent stats per listing; 0 picks a CPU-based default
	Workers int `envconfig:"FS_WORKERS" default:"0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// MetricsConfig holds metrics endpoint configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// ClientConfig holds the UI process configuration.
type ClientConfig struct {
	BridgeURL string `envconfig:"BRIDGE_URL" default:"http://127.0.0.1:8000"`
	Transport string `envconfig:"BRIDGE_TRANSPORT" default:"http"`
	Token     string `envconfig:"BRIDGE_TOKEN"`
	LogFile   string `envconfig:"EXPLORER_LOG"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	StartPath string `envconfig:"EXPLORER_START"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "127.0.0.1",
		},
		Bridge: BridgeConfig{
			MaxMessageSize: 64 * 1024,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if c.Bridge.MaxMessageSize <= 0 {
		return fmt.Errorf("BRIDGE_MAX_MESSAGE must be positive, got %d", c.Bridge.MaxMessageSize)
	}
	if c.Filesystem.Workers < 0 {
		return fmt.Errorf("FS_WORKERS must not be negative, got %d", c.Filesystem.Workers)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit needs positive RATE_LIMIT_RPS and RATE_LIMIT_BURST")
	}
	return nil
}

// LoadClient loads the UI process configuration from environment variables.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load client config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultClient returns default UI process configuration.
func DefaultClient() *ClientConfig {
	return &ClientConfig{
		BridgeURL: "http://127.0.0.1:8000",
		Transport: TransportHTTP,
		LogLevel:  "info",
	}
}

// Validate checks the transport choice.
func (c *ClientConfig) Validate() error {
	switch c.Transport {
	case TransportHTTP, TransportWS, TransportLocal:
		return nil
	}
	return fmt.Errorf("unknown bridge transport %q (want %s, %s or %s)",
		c.Transport, TransportHTTP, TransportWS, TransportLocal)
}
