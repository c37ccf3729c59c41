// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

/*
Package bootstrap assembles the in-memory recommendation state from
configuration.

Build runs the startup pipeline once:

 1. Open an in-memory DuckDB and read the dataset file
 2. Normalize records into a catalog.Corpus
 3. Build the immutable TF-IDF index
 4. Create the Recommender, wrapped in a result cache when enabled

The returned Components are read-only and shared by the HTTP server and
the moviectl CLI. The DuckDB connection is closed before Build returns.
*/
package bootstrap
