// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package middleware

import (
	"context"
	"net/http"

	"github.com/tomtom215/citescape/internal/logging"
)

const (
	// RequestIDHeader carries the per-request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// CorrelationIDHeader carries an ID shared by a chain of requests, such
	// as a client retrying the same questionnaire submission.
	CorrelationIDHeader = "X-Correlation-ID"
)

// maxTraceIDLen bounds IDs accepted from clients and proxies.
const maxTraceIDLen = 128

// RequestID stores a request ID and a correlation ID in the logging context
// and echoes both as response headers. Incoming IDs are kept only when
// validTraceID accepts them, so they can be logged and echoed verbatim.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validTraceID(requestID) {
			requestID = logging.GenerateRequestID()
		}
		correlationID := r.Header.Get(CorrelationIDHeader)
		if !validTraceID(correlationID) {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		w.Header().Set(CorrelationIDHeader, correlationID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		next(w, r.WithContext(ctx))
	}
}

// GetRequestID returns the request ID set by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}

// validTraceID accepts 1 to maxTraceIDLen characters of [A-Za-z0-9._:-].
// Anything else could split log lines or response headers.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
