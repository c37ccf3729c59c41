// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package catalog

import "strings"

// Corpus is the fixed, ordered set of documents the engine indexes.
type Corpus struct {
	docs     []Document
	meta     []Metadata
	titles   map[string]int // title key -> lowest document ID
	features []string
	skipped  int
}

// NewCorpus builds a corpus from loader records.
//
// Document IDs follow input order. Records without a title are skipped and
// counted (see Skipped). When several documents share a title, the title
// index keeps the first one.
func NewCorpus(records []Record) *Corpus {
	c := &Corpus{
		docs:     make([]Document, 0, len(records)),
		meta:     make([]Metadata, 0, len(records)),
		titles:   make(map[string]int, len(records)),
		features: make([]string, 0, len(records)),
	}

	for i := range records {
		rec := &records[i]
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			c.skipped++
			continue
		}

		id := len(c.docs)
		doc := Document{
			ID:         id,
			Title:      title,
			Features:   NormalizeFeatures(rec.Features),
			Collection: CollectionKey(rec.Collection),
		}
		c.docs = append(c.docs, doc)
		c.features = append(c.features, doc.Features)
		c.meta = append(c.meta, Metadata{
			ReleaseDate: rec.ReleaseDate,
			ReleaseYear: rec.ReleaseYear,
			Popularity:  rec.Popularity,
			VoteCount:   rec.VoteCount,
			VoteAverage: rec.VoteAverage,
		})

		key := TitleKey(title)
		if _, exists := c.titles[key]; !exists {
			c.titles[key] = id
		}
	}

	return c
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Skipped returns how many input records were dropped for lacking a title.
func (c *Corpus) Skipped() int {
	return c.skipped
}

// Document returns the document with the given ID.
// It panics if id is out of range, like a slice index.
func (c *Corpus) Document(id int) Document {
	return c.docs[id]
}

// Metadata returns the metadata of the document with the given ID.
func (c *Corpus) Metadata(id int) Metadata {
	return c.meta[id]
}

// FeatureTexts returns the canonical feature text of every document,
// aligned by document ID. The returned slice must not be modified.
func (c *Corpus) FeatureTexts() []string {
	return c.features
}

// Lookup resolves a title (case-insensitive) to the first document carrying it.
func (c *Corpus) Lookup(title string) (int, bool) {
	id, ok := c.titles[TitleKey(title)]
	return id, ok
}
