// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultJanitorInterval is how often expired cache entries are purged.
const DefaultJanitorInterval = time.Minute

// Purger drops expired entries and reports how many were removed.
// Implemented by *recommend.CachedRecommender.
type Purger interface {
	Purge() int
}

// CacheJanitorService periodically purges expired recommendation cache
// entries so memory is reclaimed even for titles nobody asks for again.
type CacheJanitorService struct {
	cache    Purger
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitorService creates a janitor. A non-positive interval uses
// DefaultJanitorInterval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cache Purger, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &CacheJanitorService{
		cache:    cache,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if removed := s.cache.Purge(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired cache entries purged")
			}
		}
	}
}

// String returns the service name for logging.
func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}
