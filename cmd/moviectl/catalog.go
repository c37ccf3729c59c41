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
	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
)

var catalogJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score [title]",
	Short: "Show release year and popularity of a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var votesCmd = &cobra.Command{
	Use:   "votes [title]",
	Short: "Show vote count and average of a title",
	Long: `Shows the vote count of a title. The average is reported only when
the title has at least recommend.min_votes votes (default 2000).`,
	Args: cobra.ExactArgs(1),
	RunE: runVotes,
}

var (
	releasesMonth   string
	releasesWeekday string
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Count releases by Spanish month or weekday name",
	Example: `  moviectl releases --month enero
  moviectl releases --weekday sábado`,
	Args: cobra.NoArgs,
	RunE: runReleases,
}

func init() {
	for _, c := range []*cobra.Command{scoreCmd, votesCmd, releasesCmd} {
		c.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(c)
	}
	releasesCmd.Flags().StringVar(&releasesMonth, "month", "", "month name (enero..diciembre)")
	releasesCmd.Flags().StringVar(&releasesWeekday, "weekday", "", "day name (lunes..domingo)")
	releasesCmd.MarkFlagsMutuallyExclusive("month", "weekday")
	releasesCmd.MarkFlagsOneRequired("month", "weekday")
}

func runScore(cmd *cobra.Command, args []string) error {
	c, err := components(cmd)
	if err != nil {
		return err
	}

	info, err := c.Corpus.Score(args[0])
	if err != nil {
		return catalogError(args[0], err)
	}
	if catalogJSON {
		return printJSON(cmd, info)
	}

	cmd.Printf("%s (%d) popularity %s\n", heading(info.Title), info.ReleaseYear, accent(fmt.Sprintf("%.2f", info.Popularity)))
	return nil
}

func runVotes(cmd *cobra.Command, args []string) error {
	c, err := components(cmd)
	if err != nil {
		return err
	}

	info, err := c.Corpus.Votes(args[0], appConfig.Recommend.MinVotes)
	if err != nil {
		return catalogError(args[0], err)
	}
	if catalogJSON {
		return printJSON(cmd, info)
	}

	cmd.Printf("%s (%d) has %s votes\n", heading(info.Title), info.ReleaseYear, accent(info.VoteCount))
	if info.Eligible {
		cmd.Printf("  Average rating: %s\n", accent(fmt.Sprintf("%.1f", info.VoteAverage)))
	} else {
		cmd.Println(muted(fmt.Sprintf("  Fewer than %d votes, average not reported", info.MinVotes)))
	}
	return nil
}

func runReleases(cmd *cobra.Command, _ []string) error {
	c, err := components(cmd)
	if err != nil {
		return err
	}

	if releasesMonth != "" {
		month, count, err := c.Corpus.CountByMonth(releasesMonth)
		if err != nil {
			return err
		}
		if catalogJSON {
			return printJSON(cmd, api.MonthCountResponse{Month: releasesMonth, MonthNumber: int(month), Count: count})
		}
		cmd.Printf("%s movies released in %s\n", accent(count), heading(releasesMonth))
		return nil
	}

	day, count, err := c.Corpus.CountByWeekday(releasesWeekday)
	if err != nil {
		return err
	}
	if catalogJSON {
		return printJSON(cmd, api.WeekdayCountResponse{Day: releasesWeekday, DayNumber: int(day), Count: count})
	}
	cmd.Printf("%s movies released on %s\n", accent(count), heading(releasesWeekday))
	return nil
}

func catalogError(title string, err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("title %q is not in the catalog", title)
	}
	return err
}
