// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package middleware

import (
	"net/http"
	"time"

	"github.com/sebastiandiazro/MLOps-1/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which AccessLog warns.
const DefaultSlowRequestThreshold = 500 * time.Millisecond

// AccessLog returns middleware writing one structured line per request.
// Requests slower than slow, or answered with a 5xx, are logged at warn
// level; everything else at debug. A non-positive slow uses
// DefaultSlowRequestThreshold.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			if duration > slow || rec.statusCode >= http.StatusInternalServerError {
				event = logger.Warn()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", rec.statusCode).
				Int("bytes", rec.bytes).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}
