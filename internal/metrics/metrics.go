// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// Dataset Metrics
	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of records read from the dataset file",
		},
	)

	DatasetSkippedRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_skipped_records",
			Help: "Number of dataset records dropped for lacking a title",
		},
	)

	DatasetLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_load_duration_seconds",
			Help: "Time taken to read the dataset at startup",
		},
	)

	// Index Metrics
	IndexDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_documents",
			Help: "Number of documents in the vector space index",
		},
	)

	IndexVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_vocabulary_terms",
			Help: "Number of distinct terms in the index vocabulary",
		},
	)

	IndexNonZero = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_nonzero_entries",
			Help: "Total non-zero entries across all document vectors",
		},
	)

	IndexZeroVectors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_zero_vectors",
			Help: "Number of documents whose feature text produced no terms",
		},
	)

	IndexBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_build_duration_seconds",
			Help: "Time taken to build the vector space index",
		},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time taken to assemble recommendations",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_size",
			Help:    "Number of titles returned per recommendation query",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10, 20},
		},
	)

	// Catalog Metrics
	CatalogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Total number of catalog metadata queries",
		},
		[]string{"query", "outcome"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordDatasetLoad records the outcome of reading the dataset.
func RecordDatasetLoad(records, skipped int, duration time.Duration) {
	DatasetRecords.Set(float64(records))
	DatasetSkippedRecords.Set(float64(skipped))
	DatasetLoadDuration.Set(duration.Seconds())
}

// RecordIndexBuild publishes index shape and build time.
func RecordIndexBuild(documents, vocabulary, nonZero, zeroVectors int, duration time.Duration) {
	IndexDocuments.Set(float64(documents))
	IndexVocabulary.Set(float64(vocabulary))
	IndexNonZero.Set(float64(nonZero))
	IndexZeroVectors.Set(float64(zeroVectors))
	IndexBuildDuration.Set(duration.Seconds())
}

// RecordRecommendation records one recommendation query.
func RecordRecommendation(outcome string, results int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if outcome == OutcomeOK {
		RecommendationResultSize.Observe(float64(results))
	}
}

// RecordCatalogQuery records one catalog metadata query.
func RecordCatalogQuery(query, outcome string) {
	CatalogQueriesTotal.WithLabelValues(query, outcome).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// CacheStatsFunc reports cumulative hits, misses and the current size of a cache.
type CacheStatsFunc func() (hits, misses int64, size int)

// cacheCollector exposes a cache's own counters at scrape time.
type cacheCollector struct {
	stats  CacheStatsFunc
	hits   *prometheus.Desc
	misses *prometheus.Desc
	size   *prometheus.Desc
}

// NewCacheCollector returns a collector reading stats on every scrape.
func NewCacheCollector(cacheType string, stats CacheStatsFunc) prometheus.Collector {
	labels := prometheus.Labels{"cache_type": cacheType}
	return &cacheCollector{
		stats:  stats,
		hits:   prometheus.NewDesc("cache_hits_total", "Total number of cache hits", nil, labels),
		misses: prometheus.NewDesc("cache_misses_total", "Total number of cache misses", nil, labels),
		size:   prometheus.NewDesc("cache_entries", "Current number of cached entries", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.size
}

// Collect implements prometheus.Collector.
func (c *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	hits, misses, size := c.stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(misses))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(size))
}

// RegisterCache registers a cache collector with the default registry.
// Registering the same cache type twice replaces nothing and is not an error.
func RegisterCache(cacheType string, stats CacheStatsFunc) error {
	err := prometheus.Register(NewCacheCollector(cacheType, stats))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}
