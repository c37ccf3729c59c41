// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

// Package logging provides the zerolog-based global logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("documents", n).Msg("index built")
//	logging.Ctx(ctx).Warn().Str("title", t).Msg("title not found")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
//
// Components receive a zerolog.Logger and tag it once:
//
//	logger := logging.WithComponent("recommend")
//
// Libraries that want a *slog.Logger (the supervisor tree, for one) get
// NewSlogLogger, which writes through the same zerolog backend.
package logging
