// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package recommend

import (
	"fmt"
	"time"
)

// DefaultK is the number of titles returned per query.
const DefaultK = 5

// Config holds recommendation engine settings.
type Config struct {
	// K is the maximum number of titles returned.
	// Default: 5.
	K int `json:"k"`

	// CollectionPriority places documents from the query's collection
	// ahead of all others.
	// Default: true.
	CollectionPriority bool `json:"collection_priority"`

	// Cache configures result caching.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig configures the recommendation result cache.
type CacheConfig struct {
	// Enabled controls whether results are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// MaxEntries is the maximum number of cached queries.
	// Default: 1024.
	MaxEntries int `json:"max_entries"`

	// TTL is the cache entry time-to-live.
	// Default: 10m.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		K:                  DefaultK,
		CollectionPriority: true,
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 1024,
			TTL:        10 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("k must be positive, got %d", c.K)
	}
	if c.Cache.Enabled {
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
	}
	return nil
}
