// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	heading = color.New(color.FgGreen, color.Bold).SprintFunc()
	accent  = color.New(color.FgCyan, color.Bold).SprintFunc()
	muted   = color.New(color.Faint).SprintFunc()
)

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
