// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

// Package database reads the movie catalog through an in-memory DuckDB
// instance.
//
// DuckDB is used purely as a columnar file reader: the dataset (parquet or
// CSV) is scanned with read_parquet / read_csv_auto and materialized into
// catalog.Record values. Nothing is written and no schema is created; the
// connection can be closed as soon as LoadMovies returns.
//
// Files:
//   - database.go: connection lifecycle and pool tuning
//   - movies.go: dataset source resolution and the LoadMovies scan
//   - database_utils.go: context deadlines and SQL quoting helpers
//   - errors.go: sentinel errors and close helpers
package database
