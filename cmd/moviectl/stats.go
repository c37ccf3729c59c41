// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package main

import (
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	c, err := components(cmd)
	if err != nil {
		return err
	}

	stats := c.Index.Stats()
	if statsJSON {
		return printJSON(cmd, stats)
	}

	cmd.Println(heading("Index statistics"))
	cmd.Printf("  Documents:        %s\n", accent(stats.Documents))
	cmd.Printf("  Vocabulary:       %s\n", accent(stats.Vocabulary))
	cmd.Printf("  Non-zero entries: %s\n", accent(stats.NonZero))
	cmd.Printf("  Empty documents:  %s\n", accent(stats.ZeroVectors))
	cmd.Printf("  Skipped records:  %s\n", accent(c.Corpus.Skipped()))
	return nil
}
