// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "HTTP_READ_TIMEOUT"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "HTTP_SHUTDOWN_TIMEOUT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"console format", func(c *Config) { c.Logging.Format = "console" }, ""},
		{"invalid country id", func(c *Config) { c.Catalog.Countries = []string{"Spain!"} }, "invalid country"},
		{"duplicate country", func(c *Config) { c.Catalog.Countries = []string{"spain", "spain"} }, "twice"},
		{"max top n zero", func(c *Config) { c.Recommend.MaxTopN = 0 }, "RECOMMEND_MAX_TOP_N"},
		{"default above max", func(c *Config) { c.Recommend.DefaultTopN = 60 }, "RECOMMEND_DEFAULT_TOP_N"},
		{"default zero", func(c *Config) { c.Recommend.DefaultTopN = 0 }, "RECOMMEND_DEFAULT_TOP_N"},
		{"negative cache size", func(c *Config) { c.Recommend.CacheSize = -1 }, "RECOMMEND_CACHE_SIZE"},
		{"cache without ttl", func(c *Config) { c.Recommend.CacheSize = 16; c.Recommend.CacheTTL = 0 }, "RECOMMEND_CACHE_TTL"},
		{"cache disabled without ttl", func(c *Config) { c.Recommend.CacheSize = 0; c.Recommend.CacheTTL = 0 }, ""},
		{"zero request timeout", func(c *Config) { c.Recommend.RequestTimeout = 0 }, "RECOMMEND_REQUEST_TIMEOUT"},
		{"breaker ratio above one", func(c *Config) { c.Recommend.BreakerFailureRatio = 1.5 }, "BREAKER_FAILURE_RATIO"},
		{"zero breaker timeout", func(c *Config) { c.Recommend.BreakerTimeout = 0 }, "BREAKER_TIMEOUT"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit zero but disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"negative window", func(c *Config) { c.Security.RateLimitWindow = -time.Second }, "RATE_LIMIT_WINDOW"},
		{"relative metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "METRICS_PATH"},
		{"metrics under api", func(c *Config) { c.Metrics.Path = "/api/metrics" }, "METRICS_PATH"},
		{"bad metrics path ignored when disabled", func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Path = ""
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoggingOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Logging = LoggingConfig{Level: "debug", Format: "console", Caller: true}

	opts := cfg.LoggingOptions()
	if opts.Level != "debug" || opts.Format != "console" || !opts.Caller {
		t.Errorf("LoggingOptions() = %+v", opts)
	}
	if !opts.Timestamp {
		t.Error("LoggingOptions() should keep timestamps on")
	}
}

func TestServerAddress(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8470, "0.0.0.0:8470"},
		{"", 9000, ":9000"},
		{"::1", 8080, "[::1]:8080"},
	}
	for _, tt := range tests {
		s := ServerConfig{Host: tt.host, Port: tt.port}
		if got := s.Address(); got != tt.want {
			t.Errorf("Address(%q, %d) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestUsesEmbeddedCatalogs(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.UsesEmbeddedCatalogs() {
		t.Error("default config should use embedded catalogs")
	}
	cfg.Catalog.Dir = "/data/catalogs"
	if cfg.UsesEmbeddedCatalogs() {
		t.Error("config with a catalog dir should not use embedded catalogs")
	}
}
