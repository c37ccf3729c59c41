// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mlops/config.yaml",
	"/etc/mlops/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:              "Datasets/movies_df.parquet",
			Format:            "auto",
			TitleColumn:       "title",
			FeaturesColumn:    "features",
			CollectionColumn:  "collection_id",
			ReleaseDateColumn: "release_date",
			ReleaseYearColumn: "release_year",
			PopularityColumn:  "popularity",
			VoteCountColumn:   "vote_count",
			VoteAverageColumn: "vote_average",
		},
		Database: DatabaseConfig{
			MaxMemory: "1GB",
			Threads:   0,
		},
		Recommend: RecommendConfig{
			K:                  5,
			CollectionPriority: true,
			CacheEnabled:       true,
			CacheSize:          1024,
			CacheTTL:           10 * time.Minute,
			MinVotes:           2000,
		},
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// DATASET_PATH -> dataset.path, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first existing
// default path, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Dataset mappings
	"dataset_path":                "dataset.path",
	"dataset_format":              "dataset.format",
	"dataset_title_column":        "dataset.title_column",
	"dataset_features_column":     "dataset.features_column",
	"dataset_collection_column":   "dataset.collection_column",
	"dataset_release_date_column": "dataset.release_date_column",
	"dataset_release_year_column": "dataset.release_year_column",
	"dataset_popularity_column":   "dataset.popularity_column",
	"dataset_vote_count_column":   "dataset.vote_count_column",
	"dataset_vote_average_column": "dataset.vote_average_column",

	// Database mappings
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	// Recommendation engine mappings
	"recommend_k":                   "recommend.k",
	"recommend_collection_priority": "recommend.collection_priority",
	"recommend_cache_enabled":       "recommend.cache_enabled",
	"recommend_cache_size":          "recommend.cache_size",
	"recommend_cache_ttl":           "recommend.cache_ttl",
	"recommend_min_votes":           "recommend.min_votes",

	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Returning "" makes koanf skip the variable.
//
// Examples:
//   - DATASET_PATH -> dataset.path
//   - RECOMMEND_K -> recommend.k
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
