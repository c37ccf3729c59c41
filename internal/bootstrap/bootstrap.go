// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
	"github.com/sebastiandiazro/MLOps-1/internal/config"
	"github.com/sebastiandiazro/MLOps-1/internal/database"
	"github.com/sebastiandiazro/MLOps-1/internal/metrics"
	"github.com/sebastiandiazro/MLOps-1/internal/recommend"
)

// Recommender is satisfied by both the plain and the cached recommender.
type Recommender interface {
	Recommend(ctx context.Context, title string) ([]string, error)
	Explain(ctx context.Context, title string) ([]recommend.Recommendation, error)
}

// Components holds the state built at startup.
type Components struct {
	Corpus      *catalog.Corpus
	Index       *recommend.Index
	Recommender Recommender

	// Cached is nil when result caching is disabled.
	Cached *recommend.CachedRecommender
}

// EngineConfig maps application settings onto the recommender's config.
func EngineConfig(cfg *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		K:                  cfg.K,
		CollectionPriority: cfg.CollectionPriority,
		Cache: recommend.CacheConfig{
			Enabled:    cfg.CacheEnabled,
			MaxEntries: cfg.CacheSize,
			TTL:        cfg.CacheTTL,
		},
	}
}

// Build loads the dataset and constructs the index and recommender.
// An empty dataset yields recommend.ErrEmptyCorpus.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func Build(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Components, error) {
	logger = logger.With().Str("component", "bootstrap").Logger()

	records, err := loadRecords(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return FromRecords(records, &cfg.Recommend, logger)
}

// FromRecords builds Components from already loaded records.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func FromRecords(records []catalog.Record, cfg *config.RecommendConfig, logger zerolog.Logger) (*Components, error) {
	start := time.Now()
	corpus := catalog.NewCorpus(records)
	metrics.RecordDatasetLoad(corpus.Len(), corpus.Skipped(), time.Since(start))

	start = time.Now()
	index, err := recommend.Build(corpus.FeatureTexts())
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	stats := index.Stats()
	buildDuration := time.Since(start)
	metrics.RecordIndexBuild(stats.Documents, stats.Vocabulary, stats.NonZero, stats.ZeroVectors, buildDuration)

	logger.Info().
		Int("documents", stats.Documents).
		Int("vocabulary", stats.Vocabulary).
		Int("non_zero", stats.NonZero).
		Int("zero_vectors", stats.ZeroVectors).
		Int("skipped_records", corpus.Skipped()).
		Dur("build_duration", buildDuration).
		Msg("index built")

	engineCfg := EngineConfig(cfg)
	rec, err := recommend.NewRecommender(corpus, index, engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommender: %w", err)
	}

	c := &Components{
		Corpus:      corpus,
		Index:       index,
		Recommender: rec,
	}

	if engineCfg.Cache.Enabled {
		c.Cached = recommend.NewCachedRecommender(rec, engineCfg.Cache)
		c.Recommender = c.Cached
		if err := metrics.RegisterCache("recommendations", c.Cached.CacheStats); err != nil {
			logger.Warn().Err(err).Msg("failed to register cache metrics")
		}
	}

	return c, nil
}

func loadRecords(ctx context.Context, cfg *config.Config) ([]catalog.Record, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	records, err := db.LoadMovies(ctx, &cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return records, nil
}
