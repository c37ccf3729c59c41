// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package main

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/sebastiandiazro/MLOps-1/internal/api"
	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
	"github.com/sebastiandiazro/MLOps-1/internal/recommend"
)

func TestRecommendCmd(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantContains []string
		wantErr      string
	}{
		{
			name:         "lists titles",
			args:         []string{"recommend", "Alpha"},
			wantContains: []string{"Movies similar to Alpha:", "[1] Alpha 2", "Beta"},
		},
		{
			name:         "explain shows scores",
			args:         []string{"recommend", "--explain", "alpha"},
			wantContains: []string{"[1] Alpha 2 (", "same collection"},
		},
		{
			name:    "unknown title",
			args:    []string{"recommend", "Omega"},
			wantErr: `title "Omega" is not in the catalog`,
		},
		{
			name:    "requires a title",
			args:    []string{"recommend"},
			wantErr: "accepts 1 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRecommendCmd_JSON(t *testing.T) {
	out, err := executeCommand(t, "recommend", "--json", "Alpha")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var resp api.RecommendationsResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if resp.Title != "Alpha" {
		t.Errorf("Title = %q, want Alpha", resp.Title)
	}
	if len(resp.Recommendations) != 5 || resp.Recommendations[0] != "Alpha 2" {
		t.Errorf("Recommendations = %v", resp.Recommendations)
	}
}

func TestStatsCmd(t *testing.T) {
	out, err := executeCommand(t, "stats")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Index statistics", "Documents:        6", "Empty documents:  0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatsCmd_JSON(t *testing.T) {
	out, err := executeCommand(t, "stats", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var stats recommend.Stats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if stats.Documents != 6 || stats.Vocabulary == 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestScoreCmd(t *testing.T) {
	out, err := executeCommand(t, "score", "ALPHA")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Alpha (1977) popularity 42.50") {
		t.Errorf("output = %q", out)
	}

	if _, err := executeCommand(t, "score", "Omega"); err == nil {
		t.Error("score of unknown title should fail")
	}
}

func TestVotesCmd(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "eligible", title: "Alpha", want: "Average rating: 8.1"},
		{name: "below minimum", title: "Beta", want: "Fewer than 2000 votes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, "votes", tt.title)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestVotesCmd_JSON(t *testing.T) {
	out, err := executeCommand(t, "votes", "--json", "Beta")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var info catalog.VotesInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if info.Eligible || info.VoteAverage != 0 || info.VoteCount != 120 {
		t.Errorf("info = %+v", info)
	}
}

func TestReleasesCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "month", args: []string{"releases", "--month", "mayo"}, want: "2 movies released in mayo"},
		{name: "weekday", args: []string{"releases", "--weekday", "viernes"}, want: "1 movies released on viernes"},
		{name: "unknown month", args: []string{"releases", "--month", "may"}, wantErr: true},
		{name: "no selector", args: []string{"releases"}, wantErr: true},
		{name: "both selectors", args: []string{"releases", "--month", "mayo", "--weekday", "lunes"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}
