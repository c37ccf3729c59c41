// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
)

func newTestRecommender(t *testing.T, records []catalog.Record, cfg *Config) *Recommender {
	t.Helper()

	corpus := catalog.NewCorpus(records)
	idx, err := Build(corpus.FeatureTexts())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	r, err := NewRecommender(corpus, idx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRecommender() error = %v", err)
	}
	return r
}

func exampleRecords() []catalog.Record {
	return []catalog.Record{
		{Title: "Alpha", Features: "space war robot", Collection: "1"},
		{Title: "Alpha 2", Features: "space war robot sequel", Collection: "1"},
		{Title: "Beta", Features: "romantic comedy"},
		{Title: "Gamma", Features: "space opera robot"},
		{Title: "Delta", Features: "romantic drama"},
		{Title: "Epsilon", Features: "robot war space"},
	}
}

func TestRecommender_Example(t *testing.T) {
	r := newTestRecommender(t, exampleRecords(), nil)

	got, err := r.Recommend(context.Background(), "Alpha")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	want := []string{"Alpha 2", "Epsilon", "Gamma", "Beta", "Delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Alpha) = %q, want %q", got, want)
	}
}

func TestRecommender_CaseInsensitiveLookup(t *testing.T) {
	r := newTestRecommender(t, exampleRecords(), nil)

	a, err := r.Recommend(context.Background(), "Alpha")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	b, err := r.Recommend(context.Background(), "  aLPHA ")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("case variants disagree: %q vs %q", a, b)
	}
}

func TestRecommender_NotFound(t *testing.T) {
	r := newTestRecommender(t, exampleRecords(), nil)

	_, err := r.Recommend(context.Background(), "Unknown Title")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Recommend(Unknown Title) error = %v, want ErrNotFound", err)
	}
}

func TestRecommender_CanceledContext(t *testing.T) {
	r := newTestRecommender(t, exampleRecords(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Recommend(ctx, "Alpha"); !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want context.Canceled", err)
	}
}

func TestRecommender_NeverReturnsQueryTitle(t *testing.T) {
	records := []catalog.Record{
		{Title: "Heat", Features: "crime heist la"},
		{Title: "heat", Features: "crime heist la remake"},
		{Title: "Ronin", Features: "crime heist paris"},
		{Title: "Collateral", Features: "crime la night"},
	}
	r := newTestRecommender(t, records, nil)

	got, err := r.Recommend(context.Background(), "Heat")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, title := range got {
		if catalog.TitleKey(title) == "heat" {
			t.Errorf("Recommend(Heat) returned the query title: %q", got)
		}
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (%q)", len(got), got)
	}
}

func TestRecommender_DeduplicatesTitles(t *testing.T) {
	records := []catalog.Record{
		{Title: "Query", Features: "space robot"},
		{Title: "Twin", Features: "space robot"},
		{Title: "TWIN", Features: "space robot war"},
		{Title: "Other", Features: "space"},
	}
	r := newTestRecommender(t, records, nil)

	got, err := r.Recommend(context.Background(), "Query")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	want := []string{"Twin", "Other"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Query) = %q, want %q", got, want)
	}
}

func TestRecommender_LengthBounds(t *testing.T) {
	tests := []struct {
		name    string
		titles  int
		wantLen int
	}{
		{"single document", 1, 0},
		{"three documents", 3, 2},
		{"exactly six", 6, 5},
		{"large catalog", 40, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]catalog.Record, tt.titles)
			for i := range records {
				records[i] = catalog.Record{
					Title:    fmt.Sprintf("Movie %d", i),
					Features: fmt.Sprintf("drama term%d", i%4),
				}
			}
			r := newTestRecommender(t, records, nil)

			got, err := r.Recommend(context.Background(), "Movie 0")
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d (%q)", len(got), tt.wantLen, got)
			}
		})
	}
}

func TestRecommender_CollectionPriority(t *testing.T) {
	// The query's franchise shares no vocabulary with it, yet must lead.
	records := []catalog.Record{
		{Title: "Saga I", Features: "desert planet spice", Collection: 42.0},
		{Title: "Clone A", Features: "desert planet spice"},
		{Title: "Clone B", Features: "desert planet"},
		{Title: "Saga IV", Features: "ocean", Collection: 42.0},
		{Title: "Saga II", Features: "spice worm", Collection: 42.0},
		{Title: "Saga III", Features: "unrelated", Collection: 42.0},
		{Title: "Saga V", Features: "planet", Collection: 42.0},
		{Title: "Clone C", Features: "desert"},
	}

	t.Run("enabled", func(t *testing.T) {
		r := newTestRecommender(t, records, nil)

		got, err := r.Recommend(context.Background(), "Saga I")
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}

		// Four collection members first, ranked by similarity then ID, then
		// the best non-collection match.
		want := []string{"Saga V", "Saga II", "Saga IV", "Saga III", "Clone A"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Recommend(Saga I) = %q, want %q", got, want)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.CollectionPriority = false
		r := newTestRecommender(t, records, cfg)

		got, err := r.Recommend(context.Background(), "Saga I")
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if got[0] != "Clone A" {
			t.Errorf("Recommend(Saga I)[0] = %q, want %q", got[0], "Clone A")
		}
	})
}

func TestRecommender_Explain(t *testing.T) {
	r := newTestRecommender(t, exampleRecords(), nil)

	recs, err := r.Explain(context.Background(), "Alpha")
	if err != nil {
		t.Fatalf("Explain() error = %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("len = %d, want 5", len(recs))
	}
	if !recs[0].SameCollection || recs[0].Title != "Alpha 2" {
		t.Errorf("recs[0] = %+v, want same-collection Alpha 2", recs[0])
	}
	for _, rec := range recs[1:] {
		if rec.SameCollection {
			t.Errorf("%q marked same collection", rec.Title)
		}
	}
	if recs[3].Score != 0 || recs[4].Score != 0 {
		t.Errorf("unrelated titles scored %v and %v, want 0", recs[3].Score, recs[4].Score)
	}
}

func TestRecommender_CustomK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.K = 2
	r := newTestRecommender(t, exampleRecords(), cfg)

	got, err := r.Recommend(context.Background(), "Alpha")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	want := []string{"Alpha 2", "Epsilon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(Alpha) = %q, want %q", got, want)
	}
}

func TestNewRecommender_Validation(t *testing.T) {
	corpus := catalog.NewCorpus(exampleRecords())
	idx, err := Build(corpus.FeatureTexts())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	t.Run("invalid k", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.K = 0
		if _, err := NewRecommender(corpus, idx, cfg, zerolog.Nop()); err == nil {
			t.Error("expected error for k = 0")
		}
	})

	t.Run("mismatched index", func(t *testing.T) {
		small, _ := Build([]string{"one"})
		if _, err := NewRecommender(corpus, small, nil, zerolog.Nop()); err == nil {
			t.Error("expected error for mismatched corpus and index")
		}
	})
}
