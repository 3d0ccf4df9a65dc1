// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/citescape/internal/logging"
)

// AccessLog writes one log line per request. Server errors log at error
// level, client errors at warn, everything else at debug so health probes
// stay quiet at the default level.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next(wrapper, r)

		var event *zerolog.Event
		logger := logging.CtxWith(r.Context()).Logger()
		switch {
		case wrapper.statusCode >= http.StatusInternalServerError:
			event = logger.Error()
		case wrapper.statusCode >= http.StatusBadRequest:
			event = logger.Warn()
		default:
			event = logger.Debug()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", RoutePattern(r)).
			Int("status", wrapper.statusCode).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("http request")
	}
}
