// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

// Package recommend implements the content-based similarity engine.
//
// # Architecture
//
// Recommendations are produced in three stages:
//
//   - Index: a TF-IDF vector space over the corpus feature texts, built once
//   - Rank: cosine similarity of one document against every document
//   - Assemble: self-exclusion, collection priority, title de-duplication
//
// # Weighting
//
// Term frequency is the raw count. Inverse document frequency is smoothed:
//
//	idf(t) = ln((1 + N) / (1 + df(t))) + 1
//
// Every document vector is L2-normalized at build time, so cosine similarity
// reduces to a sparse dot product. A document with no terms gets a zero
// vector whose similarity with everything is 0.
//
// # Determinism
//
// Vocabulary columns are assigned in first-seen order over a single pass of
// the corpus and ranking ties are broken by ascending document ID. The same
// corpus always yields the same recommendations.
//
// # Usage
//
//	corpus := catalog.NewCorpus(records)
//	index, err := recommend.Build(corpus.FeatureTexts())
//	if err != nil {
//	    return err
//	}
//	rec, err := recommend.NewRecommender(corpus, index, recommend.DefaultConfig(), logger)
//	titles, err := rec.Recommend(ctx, "Toy Story")
//
// # Thread Safety
//
// Index and Recommender are immutable after construction and safe for
// concurrent use. CachedRecommender guards its cache with a mutex.
package recommend
