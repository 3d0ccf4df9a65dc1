// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

/*
Package middleware provides HTTP middleware components for the gateway.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging context
  - Prometheus Metrics: request count, latency and in-flight gauge per route
  - Access Log: one structured zerolog line per request

Middleware here uses the http.HandlerFunc shape; the api package adapts it
for chi's r.Use.

Metrics are labeled with the chi route pattern (for example
/api/v1/countries/{country}/recommendations) rather than the raw path, so
per-country URLs do not create new series.
*/
package middleware
