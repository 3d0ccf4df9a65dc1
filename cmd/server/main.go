// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

// Package main is the Citescape HTTP server.
//
// Startup order:
//
//  1. Configuration: defaults, config.yaml, .env and environment (koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Registry: one engine per configured country; a country whose catalog
//     fails to load is logged and left out, and zero countries is fatal
//  4. Supervisor tree: the health monitor in the engine layer and the HTTP
//     server in the API layer
//
// SIGINT and SIGTERM cancel the root context; the HTTP server then drains
// in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT.
//
// Example:
//
//	HTTP_PORT=8470 CATALOG_COUNTRIES=spain,portugal ./citescape-server
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/citescape/internal/api"
	"github.com/tomtom215/citescape/internal/config"
	"github.com/tomtom215/citescape/internal/logging"
	"github.com/tomtom215/citescape/internal/metrics"
	"github.com/tomtom215/citescape/internal/recommend"
	"github.com/tomtom215/citescape/internal/recommend/countries"
	"github.com/tomtom215/citescape/internal/supervisor"
	"github.com/tomtom215/citescape/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// healthCheckInterval is how often the health monitor polls the registry.
const healthCheckInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingOptions())
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Address()).
		Bool("embedded_catalogs", cfg.UsesEmbeddedCatalogs()).
		Str("catalog_dir", cfg.Catalog.Dir).
		Msg("Starting Citescape")

	registry := recommend.NewRegistry(logging.Logger())
	res := countries.RegisterAll(registry, cfg.Catalog.Countries, cfg.Catalog.Dir)
	for country, ferr := range res.Failed {
		logging.Error().Err(ferr).Str("country", country).Msg("Country not available")
	}
	if len(res.Registered) == 0 {
		logging.Fatal().Msg("No country could be registered")
	}
	logging.Info().Strs("countries", res.Registered).Msg("Country engines ready")

	handler := api.NewHandler(registry, api.HandlerConfig{
		DefaultTopN:    cfg.Recommend.DefaultTopN,
		MaxTopN:        cfg.Recommend.MaxTopN,
		RequestTimeout: cfg.Recommend.RequestTimeout,
		Breaker: api.BreakerConfig{
			FailureRatio: cfg.Recommend.BreakerFailureRatio,
			MinRequests:  cfg.Recommend.BreakerMinRequests,
			Timeout:      cfg.Recommend.BreakerTimeout,
		},
		CacheSize: cfg.Recommend.CacheSize,
		CacheTTL:  cfg.Recommend.CacheTTL,
	})
	router := api.NewRouter(handler,
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)),
		api.RouterOptions{
			MetricsEnabled: cfg.Metrics.Enabled,
			MetricsPath:    cfg.Metrics.Path,
		})

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddEngineService(services.NewHealthMonitorService(registry, healthCheckInterval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport() //nolint:errcheck // best-effort shutdown report
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Citescape stopped")
}
