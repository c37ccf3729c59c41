// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

// Package middleware provides chi-compatible HTTP middleware shared by the
// API router:
//
//   - RequestID: propagates or generates X-Request-ID and stores it in the
//     logging context
//   - AccessLog: one structured log line per request, warning when slow
//   - PrometheusMetrics: request counters, latency and in-flight gauge,
//     labelled by route pattern rather than raw path
//
// Order matters: RequestID must run before AccessLog so the log line carries
// the request ID.
package middleware
