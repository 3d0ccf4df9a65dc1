// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

/*
Package api is the HTTP gateway in front of the country engine registry.

# Routes

	GET  /api/v1/health                                    aggregate engine health
	GET  /api/v1/countries                                 registered countries
	GET  /api/v1/countries/{country}/health                one engine's health and counters
	GET  /api/v1/countries/{country}/questionnaire         fields the engine reads
	POST /api/v1/countries/{country}/recommendations       ranked cities
	GET  /metrics                                          Prometheus (when enabled)

The recommendations route always answers with the engine envelope
({status, message, recommendations, ...}), including its own 400, 404 and
503 failures. The listing routes use the APIResponse wrapper.

# Middleware

Global: request id with logging context, chi RealIP and Recoverer, CORS.
Under /api/v1: httprate per-IP limiting, Prometheus request metrics, the
access log and gzip for JSON bodies.

Each country engine sits behind its own sony/gobreaker circuit breaker.
Caller mistakes (negative top_n, cancelled requests) never count as
breaker failures.

When HandlerConfig.CacheSize is positive, success envelopes are replayed
from an in-memory TTL cache for identical {responses, top_n} bodies and the
X-Cache header reports HIT or MISS.
*/
package api
