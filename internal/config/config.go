// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/citescape/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// CatalogConfig selects where country catalogs come from.
type CatalogConfig struct {
	// Dir holds one <country>.json per country. Empty means the seed
	// catalogs embedded in the binary.
	Dir string `koanf:"dir"`

	// Countries restricts registration. Empty registers every known country.
	Countries []string `koanf:"countries"`
}

// RecommendConfig holds request handling settings for the engines.
type RecommendConfig struct {
	DefaultTopN    int           `koanf:"default_top_n"`
	MaxTopN        int           `koanf:"max_top_n"`
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// Circuit breaker around each country's engine.
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`

	// Envelope cache. A zero size disables it.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// Load reads configuration from defaults, an optional config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	opts := logging.DefaultConfig()
	opts.Level = c.Logging.Level
	opts.Format = c.Logging.Format
	opts.Caller = c.Logging.Caller
	return opts
}

// UsesEmbeddedCatalogs reports whether catalogs come from the binary.
func (c *Config) UsesEmbeddedCatalogs() bool {
	return c.Catalog.Dir == ""
}

// Address returns the host:port the HTTP server listens on.
func (c *ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
