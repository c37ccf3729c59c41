// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
)

// ErrNotFound is returned when the queried title is not in the catalog.
var ErrNotFound = errors.New("recommend: title not found")

// Recommendation is one assembled result with the score that placed it.
type Recommendation struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Score          float64 `json:"score"`
	SameCollection bool    `json:"same_collection,omitempty"`
}

// Recommender assembles title recommendations from a corpus and its index.
// It is safe for concurrent use.
type Recommender struct {
	corpus *catalog.Corpus
	index  *Index
	config Config
	logger zerolog.Logger
}

// NewRecommender wires a corpus to the index built from its feature texts.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecommender(corpus *catalog.Corpus, index *Index, cfg *Config, logger zerolog.Logger) (*Recommender, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if corpus == nil || index == nil {
		return nil, errors.New("recommend: corpus and index are required")
	}
	if corpus.Len() != index.Len() {
		return nil, fmt.Errorf("recommend: corpus has %d documents but index has %d", corpus.Len(), index.Len())
	}

	return &Recommender{
		corpus: corpus,
		index:  index,
		config: *cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Index returns the underlying vector space.
func (r *Recommender) Index() *Index {
	return r.index
}

// Corpus returns the underlying corpus.
func (r *Recommender) Corpus() *catalog.Corpus {
	return r.corpus
}

// Recommend returns up to K titles most similar to title.
func (r *Recommender) Recommend(ctx context.Context, title string) ([]string, error) {
	recs, err := r.Explain(ctx, title)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(recs))
	for i := range recs {
		titles[i] = recs[i].Title
	}
	return titles, nil
}

// Explain is Recommend with document IDs and similarity scores attached.
//
// The query document is never returned, nor is any other document sharing
// its title. When the query belongs to a collection and CollectionPriority
// is set, members of that collection come first, each group kept in
// similarity order. Titles are de-duplicated case-insensitively, first
// occurrence wins. Fewer than K results means the catalog ran out of
// distinct titles.
func (r *Recommender) Explain(ctx context.Context, title string) ([]Recommendation, error) {
	start := time.Now()

	queryID, ok := r.corpus.Lookup(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked, err := r.index.Rank(queryID)
	if err != nil {
		return nil, fmt.Errorf("rank document %d: %w", queryID, err)
	}

	query := r.corpus.Document(queryID)
	ordered := r.order(ranked, queryID, query.Collection)

	seen := map[string]struct{}{catalog.TitleKey(query.Title): {}}
	out := make([]Recommendation, 0, r.config.K)
	for _, rk := range ordered {
		if len(out) == r.config.K {
			break
		}
		doc := r.corpus.Document(rk.ID)
		key := catalog.TitleKey(doc.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Recommendation{
			ID:             doc.ID,
			Title:          doc.Title,
			Score:          rk.Score,
			SameCollection: query.Collection != "" && doc.Collection == query.Collection,
		})
	}

	r.logger.Debug().
		Str("title", query.Title).
		Int("query_id", queryID).
		Int("results", len(out)).
		Dur("duration", time.Since(start)).
		Msg("recommendations assembled")

	return out, nil
}

// order drops the query document and, when collection priority applies,
// stable-partitions same-collection documents ahead of the rest. Every
// other document stays in the list, so walking it also covers padding
// from the plain similarity ranking.
func (r *Recommender) order(ranked []Ranked, queryID int, collection string) []Ranked {
	out := make([]Ranked, 0, len(ranked))

	if collection == "" || !r.config.CollectionPriority {
		for _, rk := range ranked {
			if rk.ID != queryID {
				out = append(out, rk)
			}
		}
		return out
	}

	rest := make([]Ranked, 0, len(ranked))
	for _, rk := range ranked {
		if rk.ID == queryID {
			continue
		}
		if r.corpus.Document(rk.ID).Collection == collection {
			out = append(out, rk)
		} else {
			rest = append(rest, rk)
		}
	}
	return append(out, rest...)
}
