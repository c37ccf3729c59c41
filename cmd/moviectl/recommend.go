// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sebastiandiazro/MLOps-1/internal/api"
	"github.com/sebastiandiazro/MLOps-1/internal/recommend"
)

var (
	recommendExplain bool
	recommendJSON    bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [title]",
	Short: "Recommend movies similar to a title",
	Long: `Prints up to five movies whose descriptions are most similar to the
given title. Movies from the same collection are listed first.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendExplain, "explain", false, "show similarity scores")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	title := args[0]

	c, err := components(cmd)
	if err != nil {
		return err
	}

	recs, err := c.Recommender.Explain(commandContext(cmd), title)
	if errors.Is(err, recommend.ErrNotFound) {
		return fmt.Errorf("title %q is not in the catalog", title)
	}
	if err != nil {
		return fmt.Errorf("recommend failed: %w", err)
	}

	if recommendJSON {
		if recommendExplain {
			return printJSON(cmd, api.ExplainedRecommendationsResponse{Title: title, Recommendations: recs})
		}
		return printJSON(cmd, api.RecommendationsResponse{Title: title, Recommendations: titlesOf(recs)})
	}

	if len(recs) == 0 {
		cmd.Println("No recommendations found.")
		return nil
	}

	cmd.Printf("Movies similar to %s:\n", heading(title))
	for i, rec := range recs {
		line := fmt.Sprintf("  [%d] %s", i+1, accent(rec.Title))
		if recommendExplain {
			line += muted(fmt.Sprintf(" (%.4f", rec.Score))
			if rec.SameCollection {
				line += muted(", same collection")
			}
			line += muted(")")
		}
		cmd.Println(line)
	}
	return nil
}

func titlesOf(recs []recommend.Recommendation) []string {
	titles := make([]string, len(recs))
	for i := range recs {
		titles[i] = recs[i].Title
	}
	return titles
}
