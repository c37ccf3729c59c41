// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

/*
Package config loads and validates service configuration.

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths found
 3. Environment variables from an explicit allow-list (see envTransformFunc)

Example config.yaml:

	dataset:
	  path: Datasets/movies_df.parquet
	  title_column: title
	  features_column: features
	recommend:
	  k: 5
	  collection_priority: true
	server:
	  port: 8000
	logging:
	  level: info
	  format: console

Example environment overrides:

	DATASET_PATH=/data/movies.csv DATASET_FORMAT=csv HTTP_PORT=9000 LOG_LEVEL=debug

Validate returns the first problem found. Column names must be plain SQL
identifiers because they are interpolated into the loader query.
*/
package config
