// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package api

import (
	"net/http"
	"time"
)

// HealthLive handles GET /api/v1/health/live.
// The process is alive if it can answer at all.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready.
// Ready once the index and catalog are wired; reports index statistics.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.ready() {
		rw.ServiceUnavailable("Recommendation index not loaded")
		return
	}

	stats := h.index.Stats()
	rw.Success(ReadyResponse{
		Status:        "ready",
		Documents:     stats.Documents,
		Vocabulary:    stats.Vocabulary,
		NonZero:       stats.NonZero,
		ZeroVectors:   stats.ZeroVectors,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
