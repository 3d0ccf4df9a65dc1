// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

/*
Package config provides centralized configuration management for Citescape.

Configuration is layered with Koanf v2. Later sources override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, or config.yaml / /etc/citescape/config.yaml)
 3. Environment variables, including any loaded from a local .env file

# Environment Variables

Only variables listed in the mapping table are read, so unrelated process
environment never leaks into the configuration.

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8470)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT: Request timeouts (default: 15s, 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

Catalogs:
  - CATALOG_DIR: Directory holding <country>.json files; empty uses the
    catalogs compiled into the binary
  - CATALOG_COUNTRIES: Comma-separated countries to register (default: all)

Recommendations:
  - RECOMMEND_DEFAULT_TOP_N: top_n when a request omits it (default: 3)
  - RECOMMEND_MAX_TOP_N: Largest accepted top_n (default: 50)
  - RECOMMEND_REQUEST_TIMEOUT: Per-request budget (default: 5s)
  - RECOMMEND_BREAKER_FAILURE_RATIO, RECOMMEND_BREAKER_MIN_REQUESTS,
    RECOMMEND_BREAKER_TIMEOUT: Per-country circuit breaker tuning
  - RECOMMEND_CACHE_SIZE: Cached envelopes, 0 disables the cache (default: 0)
  - RECOMMEND_CACHE_TTL: Lifetime of a cached envelope (default: 10m)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Metrics:
  - METRICS_ENABLED (default: true), METRICS_PATH (default: /metrics)

# Thread Safety

Config is immutable after Load() and safe for concurrent reads.
*/
package config
