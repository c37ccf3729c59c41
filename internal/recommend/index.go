// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyCorpus is returned by Build when there are no documents.
	ErrEmptyCorpus = errors.New("recommend: corpus is empty")

	// ErrUnknownDocument is returned when a document ID is outside the index.
	ErrUnknownDocument = errors.New("recommend: unknown document")
)

// Vector is a sparse L2-normalized TF-IDF vector. Cols is strictly increasing
// and Weights is aligned with it.
type Vector struct {
	Cols    []int
	Weights []float64
}

// NNZ returns the number of non-zero entries.
func (v Vector) NNZ() int {
	return len(v.Cols)
}

// Dot returns the dot product of two sparse vectors by merging their columns.
func (v Vector) Dot(w Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Cols) && j < len(w.Cols) {
		switch {
		case v.Cols[i] == w.Cols[j]:
			sum += v.Weights[i] * w.Weights[j]
			i++
			j++
		case v.Cols[i] < w.Cols[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Ranked pairs a document ID with its similarity to the query document.
type Ranked struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// Stats summarizes an index.
type Stats struct {
	Documents   int `json:"documents"`
	Vocabulary  int `json:"vocabulary"`
	NonZero     int `json:"non_zero"`
	ZeroVectors int `json:"zero_vectors"`
}

// Index is an immutable TF-IDF vector space over a fixed corpus.
type Index struct {
	vocab   map[string]int
	terms   []string
	idf     []float64
	vectors []Vector
}

// Build tokenizes docs and constructs the vector space. docs[i] becomes
// document i. Identical input always produces an identical index.
func Build(docs []string) (*Index, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	idx := &Index{
		vocab:   make(map[string]int),
		vectors: make([]Vector, len(docs)),
	}

	counts := make([]map[int]int, len(docs))
	var df []int

	for i, text := range docs {
		tf := make(map[int]int)
		for _, tok := range Tokenize(text) {
			col, ok := idx.vocab[tok]
			if !ok {
				col = len(idx.terms)
				idx.vocab[tok] = col
				idx.terms = append(idx.terms, tok)
				df = append(df, 0)
			}
			if tf[col] == 0 {
				df[col]++
			}
			tf[col]++
		}
		counts[i] = tf
	}

	n := float64(len(docs))
	idx.idf = make([]float64, len(idx.terms))
	for col, d := range df {
		idx.idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}

	for i, tf := range counts {
		idx.vectors[i] = idx.vectorize(tf)
	}

	return idx, nil
}

// vectorize weights term counts and normalizes the result.
func (idx *Index) vectorize(tf map[int]int) Vector {
	if len(tf) == 0 {
		return Vector{}
	}

	cols := make([]int, 0, len(tf))
	for col := range tf {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	weights := make([]float64, len(cols))
	var norm float64
	for k, col := range cols {
		w := float64(tf[col]) * idx.idf[col]
		weights[k] = w
		norm += w * w
	}

	norm = math.Sqrt(norm)
	if norm == 0 {
		return Vector{}
	}
	for k := range weights {
		weights[k] /= norm
	}

	return Vector{Cols: cols, Weights: weights}
}

// Len returns the number of documents.
func (idx *Index) Len() int {
	return len(idx.vectors)
}

// VocabularySize returns the number of distinct terms.
func (idx *Index) VocabularySize() int {
	return len(idx.terms)
}

// Terms returns the vocabulary in column order.
func (idx *Index) Terms() []string {
	out := make([]string, len(idx.terms))
	copy(out, idx.terms)
	return out
}

// IDF returns the inverse document frequency of term and whether it is known.
func (idx *Index) IDF(term string) (float64, bool) {
	col, ok := idx.vocab[term]
	if !ok {
		return 0, false
	}
	return idx.idf[col], true
}

// Vector returns the document vector for id. The result must not be modified.
func (idx *Index) Vector(id int) (Vector, error) {
	if id < 0 || id >= len(idx.vectors) {
		return Vector{}, fmt.Errorf("%w: %d", ErrUnknownDocument, id)
	}
	return idx.vectors[id], nil
}

// Similarity returns the cosine similarity of documents a and b.
func (idx *Index) Similarity(a, b int) (float64, error) {
	va, err := idx.Vector(a)
	if err != nil {
		return 0, err
	}
	vb, err := idx.Vector(b)
	if err != nil {
		return 0, err
	}
	return va.Dot(vb), nil
}

// Rank scores every document (the query included) against document id and
// orders them by descending score, then ascending ID.
func (idx *Index) Rank(id int) ([]Ranked, error) {
	query, err := idx.Vector(id)
	if err != nil {
		return nil, err
	}

	ranked := make([]Ranked, len(idx.vectors))
	for i, v := range idx.vectors {
		score := 0.0
		if query.NNZ() > 0 && v.NNZ() > 0 {
			score = query.Dot(v)
		}
		ranked[i] = Ranked{ID: i, Score: score}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	return ranked, nil
}

// Stats returns document, vocabulary and sparsity counts.
func (idx *Index) Stats() Stats {
	s := Stats{
		Documents:  len(idx.vectors),
		Vocabulary: len(idx.terms),
	}
	for _, v := range idx.vectors {
		s.NonZero += v.NNZ()
		if v.NNZ() == 0 {
			s.ZeroVectors++
		}
	}
	return s
}
