// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig describes where the movie catalog lives and which columns
// hold each field. An empty optional column is read as NULL.
//
// Environment Variables:
//   - DATASET_PATH: parquet or CSV file (default: Datasets/movies_df.parquet)
//   - DATASET_FORMAT: parquet, csv or auto (default: auto, from the extension)
//   - DATASET_TITLE_COLUMN, DATASET_FEATURES_COLUMN, DATASET_COLLECTION_COLUMN
type DatasetConfig struct {
	Path   string `koanf:"path"`
	Format string `koanf:"format"`

	TitleColumn       string `koanf:"title_column"`
	FeaturesColumn    string `koanf:"features_column"`
	CollectionColumn  string `koanf:"collection_column"`
	ReleaseDateColumn string `koanf:"release_date_column"`
	ReleaseYearColumn string `koanf:"release_year_column"`
	PopularityColumn  string `koanf:"popularity_column"`
	VoteCountColumn   string `koanf:"vote_count_column"`
	VoteAverageColumn string `koanf:"vote_average_column"`
}

// DatabaseConfig holds DuckDB settings. The database is in-memory and only
// used to read the dataset file.
type DatabaseConfig struct {
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	K                  int           `koanf:"k"`
	CollectionPriority bool          `koanf:"collection_priority"`
	CacheEnabled       bool          `koanf:"cache_enabled"`
	CacheSize          int           `koanf:"cache_size"`
	CacheTTL           time.Duration `koanf:"cache_ttl"`

	// MinVotes is the vote count a title needs before its average is reported.
	MinVotes int `koanf:"min_votes"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, in that order of precedence. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
