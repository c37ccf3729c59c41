// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sebastiandiazro/MLOps-1/internal/bootstrap"
	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
	"github.com/sebastiandiazro/MLOps-1/internal/config"
)

func testRecords() []catalog.Record {
	return []catalog.Record{
		{Title: "Alpha", Features: []string{"space", "war", "rebels"}, Collection: 1,
			ReleaseDate: time.Date(1977, time.May, 25, 0, 0, 0, 0, time.UTC), ReleaseYear: 1977,
			Popularity: 42.5, VoteCount: 6778, VoteAverage: 8.1},
		{Title: "Alpha 2", Features: []string{"space", "war", "empire"}, Collection: 1,
			ReleaseDate: time.Date(1980, time.May, 20, 0, 0, 0, 0, time.UTC), ReleaseYear: 1980,
			Popularity: 19.4, VoteCount: 5998, VoteAverage: 8.2},
		{Title: "Beta", Features: []string{"space", "station", "war"},
			ReleaseDate: time.Date(1999, time.January, 8, 0, 0, 0, 0, time.UTC), ReleaseYear: 1999,
			Popularity: 3.1, VoteCount: 120, VoteAverage: 6.0},
		{Title: "Gamma", Features: "romance paris"},
		{Title: "Delta", Features: "heist crime"},
		{Title: "Epsilon", Features: "space pirates"},
	}
}

// resetFlags restores every flag to its default between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.ConfigPathEnvVar, "")

	original := loadComponents
	loadComponents = func(_ context.Context, cfg *config.Config) (*bootstrap.Components, error) {
		return bootstrap.FromRecords(testRecords(), &cfg.Recommend, zerolog.Nop())
	}
	noColorBefore := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		loadComponents = original
		color.NoColor = noColorBefore
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	want := map[string]bool{"recommend": false, "stats": false, "score": false, "votes": false, "releases": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmd_DatasetFlagOverridesConfig(t *testing.T) {
	if _, err := executeCommand(t, "--dataset", "/data/movies.csv", "stats"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if appConfig.Dataset.Path != "/data/movies.csv" {
		t.Errorf("Dataset.Path = %q, want /data/movies.csv", appConfig.Dataset.Path)
	}
}

func TestRootCmd_LoadFailure(t *testing.T) {
	t.Setenv(config.ConfigPathEnvVar, "")
	original := loadComponents
	loadComponents = func(context.Context, *config.Config) (*bootstrap.Components, error) {
		return nil, errors.New("dataset unreadable")
	}
	t.Cleanup(func() {
		loadComponents = original
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"stats"})

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "dataset unreadable") {
		t.Errorf("Execute() error = %v, want load failure", err)
	}
}
