// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
	"github.com/sebastiandiazro/MLOps-1/internal/recommend"
)

// decodedResponse mirrors APIResponse with raw data for per-test decoding.
type decodedResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func testRecords() []catalog.Record {
	date := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	return []catalog.Record{
		{Title: "Toy Story", Features: []string{"animation", "toy", "friendship"}, Collection: "10194",
			ReleaseDate: date(1995, time.October, 30), ReleaseYear: 1995, Popularity: 21.9, VoteCount: 5415, VoteAverage: 7.7},
		{Title: "Toy Story 2", Features: []string{"animation", "toy", "sequel"}, Collection: "10194",
			ReleaseDate: date(1999, time.October, 30), ReleaseYear: 1999, Popularity: 17.5, VoteCount: 3914, VoteAverage: 7.3},
		{Title: "Jumanji", Features: "adventure board game jungle",
			ReleaseDate: date(1995, time.December, 15), ReleaseYear: 1995, Popularity: 17.0, VoteCount: 1413, VoteAverage: 6.9},
		{Title: "Heat", Features: "crime heist los angeles",
			ReleaseDate: date(1995, time.December, 15), ReleaseYear: 1995, Popularity: 17.9, VoteCount: 1886, VoteAverage: 7.7},
		{Title: "Antz", Features: []string{"animation", "insect", "colony"},
			ReleaseDate: date(1998, time.October, 2), ReleaseYear: 1998, Popularity: 9.2, VoteCount: 1100, VoteAverage: 6.0},
	}
}

// newTestRouter builds a router over a real corpus and index.
func newTestRouter(t *testing.T) (http.Handler, *catalog.Corpus, *recommend.Recommender) {
	t.Helper()

	corpus := catalog.NewCorpus(testRecords())
	index, err := recommend.Build(corpus.FeatureTexts())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	rec, err := recommend.NewRecommender(corpus, index, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRecommender() error = %v", err)
	}

	handler := NewHandler(rec, corpus, index, HandlerOptions{MinVotes: catalog.DefaultMinVotes, Timeout: time.Second})
	mw := NewChiMiddleware(&ChiMiddlewareConfig{CORSAllowedOrigins: []string{"*"}, RateLimitDisabled: true})
	return NewRouter(handler, mw).Setup(), corpus, rec
}

func doGet(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, decodedResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var resp decodedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return rec, resp
}

func newRecorderGet(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

type stubRecommender struct {
	titles []string
	err    error
}

func (s *stubRecommender) Recommend(_ context.Context, _ string) ([]string, error) {
	return s.titles, s.err
}
