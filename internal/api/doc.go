// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

/*
Package api exposes the recommender and catalog queries over HTTP using the
chi router.

Routes (all GET):

	/api/v1/health/live                  liveness, always 200
	/api/v1/health/ready                 index statistics, 503 until wired
	/api/v1/recommendations/{title}      up to five similar titles
	/api/v1/movies/{title}/score         release year and popularity
	/api/v1/movies/{title}/votes         vote count and, if eligible, average
	/api/v1/releases/month/{month}       releases in a Spanish-named month
	/api/v1/releases/weekday/{day}       releases on a Spanish-named weekday
	/metrics                             Prometheus exposition

Every JSON response uses the envelope

	{"success": bool, "data": ..., "error": {...}, "meta": {...}}

Middleware order: request ID, real IP, panic recovery, access log, CORS,
then per-group rate limiting, security headers and Prometheus metrics.
*/
package api
