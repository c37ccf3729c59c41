// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sebastiandiazro/MLOps-1/internal/api"
	"github.com/sebastiandiazro/MLOps-1/internal/bootstrap"
	"github.com/sebastiandiazro/MLOps-1/internal/config"
	"github.com/sebastiandiazro/MLOps-1/internal/logging"
	"github.com/sebastiandiazro/MLOps-1/internal/recommend"
	"github.com/sebastiandiazro/MLOps-1/internal/supervisor"
	"github.com/sebastiandiazro/MLOps-1/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("dataset", cfg.Dataset.Path).
		Int("k", cfg.Recommend.K).
		Bool("collection_priority", cfg.Recommend.CollectionPriority).
		Bool("cache_enabled", cfg.Recommend.CacheEnabled).
		Msg("Starting movie recommendation server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components, err := bootstrap.Build(ctx, cfg, logging.Logger())
	if err != nil {
		if errors.Is(err, recommend.ErrEmptyCorpus) {
			logging.Fatal().Err(err).Str("dataset", cfg.Dataset.Path).Msg("Dataset contains no usable movies")
		}
		logging.Fatal().Err(err).Msg("Failed to build recommendation index")
	}

	// Bridges zerolog to slog for sutureslog
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(components.Recommender, components.Corpus, components.Index, api.HandlerOptions{
		MinVotes: cfg.Recommend.MinVotes,
		Timeout:  cfg.Server.Timeout,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	if components.Cached != nil {
		tree.AddMaintenanceService(services.NewCacheJanitorService(
			components.Cached, services.DefaultJanitorInterval, logging.Logger()))
		logging.Info().Msg("Cache janitor added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The channel yields exactly one value and is never closed.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Server stopped gracefully")
}
