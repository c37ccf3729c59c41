// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package catalog

import "time"

// Record is one raw movie row as delivered by the dataset loader.
//
// Features and Collection keep whatever shape the source column had
// (string, list, number, struct); NewCorpus canonicalizes them.
type Record struct {
	// Title is the display title. Records with an empty title are skipped.
	Title string

	// Features is the descriptive payload used for vectorization.
	// Either a list of tokens or a free-form string.
	Features any

	// Collection identifies the franchise the movie belongs to, if any.
	Collection any

	// ReleaseDate is the theatrical release date (zero if unknown).
	ReleaseDate time.Time

	// ReleaseYear is the release year (0 if unknown).
	ReleaseYear int

	// Popularity is the TMDB popularity score.
	Popularity float64

	// VoteCount is the number of user ratings.
	VoteCount int

	// VoteAverage is the mean user rating.
	VoteAverage float64
}

// Document is a movie as seen by the recommendation engine.
type Document struct {
	// ID is the position of the document in the corpus. Assigned once at
	// build time and never reused.
	ID int `json:"id"`

	// Title is the display title. Not unique across the corpus.
	Title string `json:"title"`

	// Features is the canonical feature text used for vectorization.
	Features string `json:"-"`

	// Collection is the franchise key; empty for standalone movies.
	Collection string `json:"collection,omitempty"`
}

// Metadata holds the non-textual attributes of a document.
type Metadata struct {
	ReleaseDate time.Time
	ReleaseYear int
	Popularity  float64
	VoteCount   int
	VoteAverage float64
}
