// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package api

import (
	"context"
	"time"

	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
	"github.com/sebastiandiazro/MLOps-1/internal/recommend"
)

// Recommender produces title recommendations.
// Implemented by *recommend.Recommender and *recommend.CachedRecommender.
type Recommender interface {
	Recommend(ctx context.Context, title string) ([]string, error)
}

// Explainer is optionally implemented by a Recommender to expose scores.
type Explainer interface {
	Explain(ctx context.Context, title string) ([]recommend.Recommendation, error)
}

// Catalog answers metadata queries. Implemented by *catalog.Corpus.
type Catalog interface {
	Score(title string) (catalog.ScoreInfo, error)
	Votes(title string, minVotes int) (catalog.VotesInfo, error)
	CountByMonth(name string) (time.Month, int, error)
	CountByWeekday(name string) (time.Weekday, int, error)
}

// IndexStats reports the vector space summary. Implemented by *recommend.Index.
type IndexStats interface {
	Stats() recommend.Stats
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness
//   - handlers_recommend.go: recommendations
//   - handlers_catalog.go: score, votes and release counts
type Handler struct {
	recommender Recommender
	catalog     Catalog
	index       IndexStats
	minVotes    int
	timeout     time.Duration
	startTime   time.Time
}

// HandlerOptions tunes request handling.
type HandlerOptions struct {
	// MinVotes is the vote count needed before an average is reported.
	MinVotes int

	// Timeout bounds each recommendation request. Zero means no extra bound.
	Timeout time.Duration
}

// NewHandler creates a handler. Any dependency may be nil, in which case
// the endpoints that need it answer 503 and readiness fails.
func NewHandler(rec Recommender, cat Catalog, index IndexStats, opts HandlerOptions) *Handler {
	return &Handler{
		recommender: rec,
		catalog:     cat,
		index:       index,
		minVotes:    opts.MinVotes,
		timeout:     opts.Timeout,
		startTime:   time.Now(),
	}
}

func (h *Handler) ready() bool {
	return h.recommender != nil && h.catalog != nil && h.index != nil
}
