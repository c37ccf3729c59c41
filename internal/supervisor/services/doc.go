// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

// Package services adapts application components to suture.Service.
//
//   - HTTPServerService: net/http server with graceful shutdown
//   - CacheJanitorService: periodic purge of expired recommendation cache entries
package services
