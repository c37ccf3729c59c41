// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package catalog

import (
	"testing"
	"time"
)

func TestNewCorpus_AssignsIDsInOrder(t *testing.T) {
	t.Parallel()

	c := NewCorpus([]Record{
		{Title: "Alpha", Features: []string{"space", "war"}},
		{Title: "  ", Features: "ignored"},
		{Title: "Beta", Features: "comedy", Collection: 7.0},
	})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", c.Skipped())
	}

	alpha := c.Document(0)
	if alpha.ID != 0 || alpha.Title != "Alpha" || alpha.Features != "space war" {
		t.Errorf("Document(0) = %+v", alpha)
	}
	beta := c.Document(1)
	if beta.ID != 1 || beta.Collection != "7" {
		t.Errorf("Document(1) = %+v", beta)
	}

	texts := c.FeatureTexts()
	if len(texts) != 2 || texts[0] != "space war" || texts[1] != "comedy" {
		t.Errorf("FeatureTexts() = %q", texts)
	}
}

func TestCorpus_Lookup(t *testing.T) {
	t.Parallel()

	c := NewCorpus([]Record{
		{Title: "Heat"},
		{Title: "Up"},
		{Title: "HEAT"},
	})

	tests := []struct {
		name   string
		title  string
		wantID int
		wantOK bool
	}{
		{"exact", "Heat", 0, true},
		{"case insensitive", "heat", 0, true},
		{"duplicate resolves to first", "HEAT", 0, true},
		{"surrounding whitespace", "  up ", 1, true},
		{"unknown", "Down", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := c.Lookup(tt.title)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.title, ok, tt.wantOK)
			}
			if ok && id != tt.wantID {
				t.Errorf("Lookup(%q) = %d, want %d", tt.title, id, tt.wantID)
			}
		})
	}
}

func TestCorpus_Metadata(t *testing.T) {
	t.Parallel()

	date := time.Date(1995, time.December, 15, 0, 0, 0, 0, time.UTC)
	c := NewCorpus([]Record{{Title: "Heat", ReleaseDate: date, Popularity: 17.9, VoteCount: 1886}})

	m := c.Metadata(0)
	if !m.ReleaseDate.Equal(date) || m.Popularity != 17.9 || m.VoteCount != 1886 {
		t.Errorf("Metadata(0) = %+v", m)
	}
}
