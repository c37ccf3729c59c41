// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

/*
Package metrics provides Prometheus metrics for the recommendation service.

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

Startup (gauges, set once):
  - dataset_records, dataset_skipped_records, dataset_load_duration_seconds
  - index_documents, index_vocabulary_terms, index_nonzero_entries,
    index_zero_vectors, index_build_duration_seconds

Queries:
  - recommendations_total{outcome}, recommendation_duration_seconds,
    recommendation_result_size
  - catalog_queries_total{query,outcome}
  - cache_hits_total, cache_misses_total, cache_entries (per cache_type)

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests, api_rate_limit_hits_total{endpoint}

DuckDB:
  - duckdb_query_duration_seconds{operation}, duckdb_query_errors_total{operation}

All collectors live in the default registry via promauto.
*/
package metrics
