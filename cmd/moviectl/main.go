// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

// Package main is moviectl, a command-line client that loads the movie
// catalog the same way the server does and answers queries locally.
//
// Usage:
//
//	moviectl recommend "Toy Story" [--explain] [--json]
//	moviectl stats
//	moviectl score "Jumanji"
//	moviectl votes "Heat"
//	moviectl releases --month enero
//	moviectl releases --weekday sábado
//
// Configuration is read like the server's (config.yaml, CONFIG_PATH and
// environment variables); --dataset overrides DATASET_PATH.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	rootCmd.SetOut(os.Stdout)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
