// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sebastiandiazro/MLOps-1/internal/bootstrap"
	"github.com/sebastiandiazro/MLOps-1/internal/config"
	"github.com/sebastiandiazro/MLOps-1/internal/logging"
)

var (
	datasetPath string
	noColor     bool
	verbose     bool
)

// appConfig is populated by the root PersistentPreRunE.
var appConfig *config.Config

// loadComponents builds the recommendation state. Tests replace it.
var loadComponents = func(ctx context.Context, cfg *config.Config) (*bootstrap.Components, error) {
	return bootstrap.Build(ctx, cfg, logging.Logger())
}

var rootCmd = &cobra.Command{
	Use:   "moviectl",
	Short: "Query the movie recommender from the command line",
	Long: `moviectl loads the movie catalog, builds the TF-IDF index and answers
recommendation and catalog queries without running the HTTP server.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "dataset file (overrides DATASET_PATH)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log loading progress to stderr")
}

func setup(_ *cobra.Command, _ []string) error {
	if noColor {
		color.NoColor = true
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
	}

	level := "warn"
	if verbose {
		level = "info"
	}
	logging.Init(logging.Config{
		Level:  level,
		Format: "console",
		Output: os.Stderr,
	})

	appConfig = cfg
	return nil
}

// components loads the catalog for the running command.
func components(cmd *cobra.Command) (*bootstrap.Components, error) {
	c, err := loadComponents(commandContext(cmd), appConfig)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
