// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package catalog

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMinVotes is the vote count below which a vote average is withheld.
const DefaultMinVotes = 2000

// spanishMonths maps Spanish month names to time.Month.
var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// spanishWeekdays maps Spanish weekday names (with and without accents) to time.Weekday.
var spanishWeekdays = map[string]time.Weekday{
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"miércoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"sábado":    time.Saturday,
	"domingo":   time.Sunday,
}

// ParseMonth resolves a Spanish month name, case-insensitively.
func ParseMonth(name string) (time.Month, error) {
	m, ok := spanishMonths[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, name)
	}
	return m, nil
}

// ParseWeekday resolves a Spanish weekday name, case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	d, ok := spanishWeekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
	}
	return d, nil
}

// CountByMonth returns how many movies were released in the named month,
// across all years. Movies without a release date are not counted.
func (c *Corpus) CountByMonth(name string) (time.Month, int, error) {
	month, err := ParseMonth(name)
	if err != nil {
		return 0, 0, err
	}

	count := 0
	for i := range c.meta {
		d := c.meta[i].ReleaseDate
		if !d.IsZero() && d.Month() == month {
			count++
		}
	}
	return month, count, nil
}

// CountByWeekday returns how many movies were released on the named weekday.
func (c *Corpus) CountByWeekday(name string) (time.Weekday, int, error) {
	day, err := ParseWeekday(name)
	if err != nil {
		return 0, 0, err
	}

	count := 0
	for i := range c.meta {
		d := c.meta[i].ReleaseDate
		if !d.IsZero() && d.Weekday() == day {
			count++
		}
	}
	return day, count, nil
}

// ScoreInfo is the popularity summary of a title.
type ScoreInfo struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	Popularity  float64 `json:"popularity"`
}

// Score returns the popularity summary of the first document with the title.
func (c *Corpus) Score(title string) (ScoreInfo, error) {
	id, ok := c.Lookup(title)
	if !ok {
		return ScoreInfo{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	m := c.meta[id]
	return ScoreInfo{
		Title:       c.docs[id].Title,
		ReleaseYear: releaseYear(m),
		Popularity:  m.Popularity,
	}, nil
}

// VotesInfo is the rating summary of a title.
//
// Eligible is false when the title has fewer votes than the minimum, in
// which case VoteAverage is left at zero.
type VotesInfo struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	VoteCount   int     `json:"vote_count"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	Eligible    bool    `json:"eligible"`
	MinVotes    int     `json:"min_votes"`
}

// Votes returns the rating summary of the first document with the title.
// A minVotes of zero or less uses DefaultMinVotes.
func (c *Corpus) Votes(title string, minVotes int) (VotesInfo, error) {
	if minVotes <= 0 {
		minVotes = DefaultMinVotes
	}

	id, ok := c.Lookup(title)
	if !ok {
		return VotesInfo{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	m := c.meta[id]
	info := VotesInfo{
		Title:       c.docs[id].Title,
		ReleaseYear: releaseYear(m),
		VoteCount:   m.VoteCount,
		MinVotes:    minVotes,
	}
	if m.VoteCount >= minVotes {
		info.Eligible = true
		info.VoteAverage = m.VoteAverage
	}
	return info, nil
}

// releaseYear prefers the explicit year and falls back to the release date.
func releaseYear(m Metadata) int {
	if m.ReleaseYear != 0 {
		return m.ReleaseYear
	}
	if !m.ReleaseDate.IsZero() {
		return m.ReleaseDate.Year()
	}
	return 0
}
