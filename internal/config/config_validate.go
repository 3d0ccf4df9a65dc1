// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/citescape/internal/logging"
	"github.com/tomtom215/citescape/internal/validation"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateMetrics()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateCatalog() error {
	seen := make(map[string]bool, len(c.Catalog.Countries))
	for _, country := range c.Catalog.Countries {
		if !validation.IsSlug(country) {
			return fmt.Errorf("CATALOG_COUNTRIES contains an invalid country id %q", country)
		}
		if seen[country] {
			return fmt.Errorf("CATALOG_COUNTRIES lists %q twice", country)
		}
		seen[country] = true
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxTopN < 1 {
		return fmt.Errorf("RECOMMEND_MAX_TOP_N must be at least 1, got %d", r.MaxTopN)
	}
	if r.DefaultTopN < 1 || r.DefaultTopN > r.MaxTopN {
		return fmt.Errorf("RECOMMEND_DEFAULT_TOP_N must be between 1 and %d, got %d", r.MaxTopN, r.DefaultTopN)
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive, got %v", r.RequestTimeout)
	}
	if r.BreakerFailureRatio <= 0 || r.BreakerFailureRatio > 1 {
		return fmt.Errorf("RECOMMEND_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", r.BreakerFailureRatio)
	}
	if r.BreakerTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_BREAKER_TIMEOUT must be positive, got %v", r.BreakerTimeout)
	}
	if r.CacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must not be negative, got %d", r.CacheSize)
	}
	if r.CacheSize > 0 && r.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when the cache is enabled, got %v", r.CacheTTL)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateMetrics() error {
	if !c.Metrics.Enabled {
		return nil
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with /, got %q", c.Metrics.Path)
	}
	if strings.HasPrefix(c.Metrics.Path, "/api/") {
		return fmt.Errorf("METRICS_PATH must not be under /api/, got %q", c.Metrics.Path)
	}
	return nil
}
