// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package recommend

import (
	"context"

	"github.com/sebastiandiazro/MLOps-1/internal/cache"
	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
)

// CachedRecommender memoizes Recommender results in an LRU keyed by the
// normalized title. Not-found lookups are not cached.
type CachedRecommender struct {
	*Recommender
	cache *cache.LRU[[]string]
}

// NewCachedRecommender wraps r with a cache sized by cfg.
func NewCachedRecommender(r *Recommender, cfg CacheConfig) *CachedRecommender {
	return &CachedRecommender{
		Recommender: r,
		cache:       cache.NewLRU[[]string](cfg.MaxEntries, cfg.TTL),
	}
}

// Recommend returns cached titles when available and computes them otherwise.
// Callers receive their own copy of the slice.
func (c *CachedRecommender) Recommend(ctx context.Context, title string) ([]string, error) {
	key := catalog.TitleKey(title)

	if titles, ok := c.cache.Get(key); ok {
		return append([]string(nil), titles...), nil
	}

	titles, err := c.Recommender.Recommend(ctx, title)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, append([]string(nil), titles...))
	return titles, nil
}

// CacheStats returns hit/miss counters and the number of cached queries.
func (c *CachedRecommender) CacheStats() (hits, misses int64, size int) {
	return c.cache.Stats()
}

// Purge drops expired entries and returns how many were removed.
func (c *CachedRecommender) Purge() int {
	return c.cache.CleanupExpired()
}
