// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package catalog

import (
	"math"
	"testing"
)

func TestNormalizeFeatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"nil", nil, ""},
		{"string as-is", "Space  War", "Space  War"},
		{"string slice", []string{"space", "war", "hero"}, "space war hero"},
		{"empty slice", []string{}, ""},
		{"any slice skips nil", []any{"drama", nil, 1995.0}, "drama 1995"},
		{"nested any slice", []any{"a", []any{"b", "c"}}, "a b c"},
		{"float", 3.5, "3.5"},
		{"NaN", math.NaN(), ""},
		{"int", 42, "42"},
		{"bytes", []byte("raw"), "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFeatures(tt.raw); got != tt.want {
				t.Errorf("NormalizeFeatures(%#v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCollectionKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"nil", nil, ""},
		{"blank string", "  ", ""},
		{"string trimmed", " 10194 ", "10194"},
		{"integral float", 10194.0, "10194"},
		{"NaN", math.NaN(), ""},
		{"map with id", map[string]any{"id": 86311.0, "name": "The Avengers Collection"}, "86311"},
		{"map with name only", map[string]any{"name": "Toy Story Collection"}, "Toy Story Collection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollectionKey(tt.raw); got != tt.want {
				t.Errorf("CollectionKey(%#v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTitleKey(t *testing.T) {
	t.Parallel()

	if got := TitleKey("  Toy Story "); got != "toy story" {
		t.Errorf("TitleKey() = %q, want %q", got, "toy story")
	}
}
