// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package config

import (
	"fmt"
	"regexp"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// identifierPattern matches plain SQL identifiers.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validDatasetFormats defines the allowed dataset formats
var validDatasetFormats = map[string]bool{
	"":        true,
	"auto":    true,
	"parquet": true,
	"csv":     true,
}

// validateDataset validates the dataset location and column names
func (c *Config) validateDataset() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if !validDatasetFormats[c.Dataset.Format] {
		return fmt.Errorf("DATASET_FORMAT must be one of: auto, parquet, csv")
	}

	required := map[string]string{
		"title_column":    c.Dataset.TitleColumn,
		"features_column": c.Dataset.FeaturesColumn,
	}
	for name, col := range required {
		if col == "" {
			return fmt.Errorf("dataset.%s is required", name)
		}
	}

	for name, col := range c.Dataset.columns() {
		if col != "" && !identifierPattern.MatchString(col) {
			return fmt.Errorf("dataset.%s %q is not a valid column identifier", name, col)
		}
	}
	return nil
}

// columns returns every configured column keyed by its config name.
func (d DatasetConfig) columns() map[string]string {
	return map[string]string{
		"title_column":        d.TitleColumn,
		"features_column":     d.FeaturesColumn,
		"collection_column":   d.CollectionColumn,
		"release_date_column": d.ReleaseDateColumn,
		"release_year_column": d.ReleaseYearColumn,
		"popularity_column":   d.PopularityColumn,
		"vote_count_column":   d.VoteCountColumn,
		"vote_average_column": d.VoteAverageColumn,
	}
}

// memoryPattern matches DuckDB memory limits such as 512MB or 2GB.
var memoryPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?\s*(B|KB|MB|GB|TB|KiB|MiB|GiB|TiB)$`)

// validateDatabase validates DuckDB settings
func (c *Config) validateDatabase() error {
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative, got %d", c.Database.Threads)
	}
	if c.Database.MaxMemory != "" && !memoryPattern.MatchString(c.Database.MaxMemory) {
		return fmt.Errorf("DUCKDB_MAX_MEMORY %q must look like 512MB or 2GB", c.Database.MaxMemory)
	}
	return nil
}

// validateRecommend validates recommendation engine settings
func (c *Config) validateRecommend() error {
	if c.Recommend.K < 1 {
		return fmt.Errorf("RECOMMEND_K must be positive, got %d", c.Recommend.K)
	}
	if c.Recommend.MinVotes < 0 {
		return fmt.Errorf("RECOMMEND_MIN_VOTES must be non-negative, got %d", c.Recommend.MinVotes)
	}
	if !c.Recommend.CacheEnabled {
		return nil
	}
	if c.Recommend.CacheSize < 1 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must be positive, got %d", c.Recommend.CacheSize)
	}
	if c.Recommend.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive, got %v", c.Recommend.CacheTTL)
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
