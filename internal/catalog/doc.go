// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

// Package catalog holds the movie corpus the recommendation engine indexes.
//
// # Overview
//
// A Corpus is built once at startup from the raw records delivered by the
// dataset loader. Building it does three things:
//
//   - Assigns every record a stable document ID (its position in the input)
//   - Normalizes the feature payload (token list or free-form string) into a
//     single canonical string via NormalizeFeatures
//   - Builds the title index, mapping lower-cased titles to the first
//     document that carries them
//
// The corpus also answers the simple metadata questions the HTTP layer
// exposes: release counts by Spanish month or weekday name, popularity score
// and vote statistics by title.
//
// # Thread Safety
//
// A Corpus is immutable after NewCorpus returns and is safe for concurrent
// reads without locking.
package catalog
