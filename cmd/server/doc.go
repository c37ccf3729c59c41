// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

/*
Package main is the entry point for the movie recommendation server.

The server loads a movie catalog once at startup, builds a TF-IDF vector
space over each movie's feature text and answers "more like this" queries
over HTTP.

# Application Architecture

Services run under a Suture v4 supervisor tree:

	RootSupervisor ("mlops")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache janitor (when the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON/console output
 3. Dataset: DuckDB reads the parquet or CSV catalog
 4. Index: TF-IDF vectors built once, immutable afterwards
 5. HTTP Server: Chi router with rate limiting, CORS and metrics

An empty catalog is fatal: the process exits before listening.

# Endpoints

	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /api/v1/recommendations/{title}
	GET /api/v1/movies/{title}/score
	GET /api/v1/movies/{title}/votes
	GET /api/v1/releases/month/{month}
	GET /api/v1/releases/weekday/{day}
	GET /metrics

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT before exiting.
*/
package main
