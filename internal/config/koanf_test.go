// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points config discovery at an empty temp dir for the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	oldPaths := DefaultConfigPaths
	oldDotEnv := DotEnvFile
	DefaultConfigPaths = []string{filepath.Join(dir, "config.yaml")}
	DotEnvFile = filepath.Join(dir, ".env")
	t.Cleanup(func() {
		DefaultConfigPaths = oldPaths
		DotEnvFile = oldDotEnv
	})

	t.Setenv(ConfigPathEnvVar, "")
	for key := range envMappings {
		name := strings.ToUpper(key)
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8470 {
		t.Errorf("Server.Port = %d, want 8470", cfg.Server.Port)
	}
	if cfg.Recommend.DefaultTopN != 3 {
		t.Errorf("Recommend.DefaultTopN = %d, want 3", cfg.Recommend.DefaultTopN)
	}
	if cfg.Recommend.RequestTimeout != 5*time.Second {
		t.Errorf("Recommend.RequestTimeout = %v, want 5s", cfg.Recommend.RequestTimeout)
	}
	if cfg.Catalog.Dir != "" {
		t.Errorf("Catalog.Dir = %q, want empty", cfg.Catalog.Dir)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8470 {
		t.Errorf("Server.Port = %d, want 8470", cfg.Server.Port)
	}
	if cfg.Recommend.BreakerMinRequests != 10 {
		t.Errorf("Recommend.BreakerMinRequests = %d, want 10", cfg.Recommend.BreakerMinRequests)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_DIR", "/srv/catalogs")
	t.Setenv("CATALOG_COUNTRIES", "spain, portugal ,")
	t.Setenv("RECOMMEND_REQUEST_TIMEOUT", "750ms")
	t.Setenv("RECOMMEND_BREAKER_MIN_REQUESTS", "25")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("SOME_UNRELATED_VAR", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Catalog.Dir != "/srv/catalogs" {
		t.Errorf("Catalog.Dir = %q", cfg.Catalog.Dir)
	}
	if got := cfg.Catalog.Countries; len(got) != 2 || got[0] != "spain" || got[1] != "portugal" {
		t.Errorf("Catalog.Countries = %v, want [spain portugal]", got)
	}
	if cfg.Recommend.RequestTimeout != 750*time.Millisecond {
		t.Errorf("Recommend.RequestTimeout = %v, want 750ms", cfg.Recommend.RequestTimeout)
	}
	if cfg.Recommend.BreakerMinRequests != 25 {
		t.Errorf("Recommend.BreakerMinRequests = %d, want 25", cfg.Recommend.BreakerMinRequests)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("Security.CORSOrigins = %v, want 2 origins", cfg.Security.CORSOrigins)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled should be true")
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	yamlDoc := `
server:
  port: 7000
catalog:
  countries:
    - germany
    - thailand
recommend:
  max_top_n: 10
  default_top_n: 5
`
	if err := os.WriteFile(path, []byte(yamlDoc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("RECOMMEND_DEFAULT_TOP_N", "4")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 from file", cfg.Server.Port)
	}
	if len(cfg.Catalog.Countries) != 2 || cfg.Catalog.Countries[0] != "germany" {
		t.Errorf("Catalog.Countries = %v, want [germany thailand]", cfg.Catalog.Countries)
	}
	if cfg.Recommend.MaxTopN != 10 {
		t.Errorf("Recommend.MaxTopN = %d, want 10", cfg.Recommend.MaxTopN)
	}
	if cfg.Recommend.DefaultTopN != 4 {
		t.Errorf("Recommend.DefaultTopN = %d, want 4 (env beats file)", cfg.Recommend.DefaultTopN)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default kept", cfg.Server.Host)
	}
}

func TestLoadWithKoanf_DotEnv(t *testing.T) {
	isolate(t)
	if err := os.WriteFile(DotEnvFile, []byte("HTTP_PORT=9191\nLOG_FORMAT=console\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	// An explicit environment value wins over .env.
	t.Setenv("LOG_FORMAT", "json")
	t.Cleanup(func() { _ = os.Unsetenv("HTTP_PORT") })

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191 from .env", cfg.Server.Port)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadWithKoanf_InvalidValue(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "0")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() expected a validation error")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"CATALOG_DIR", "catalog.dir"},
		{"RECOMMEND_MAX_TOP_N", "recommend.max_top_n"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"METRICS_PATH", "metrics.path"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.key); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
