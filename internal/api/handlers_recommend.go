// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sebastiandiazro/MLOps-1/internal/logging"
	"github.com/sebastiandiazro/MLOps-1/internal/metrics"
	"github.com/sebastiandiazro/MLOps-1/internal/recommend"
)

// Recommendations handles GET /api/v1/recommendations/{title}.
//
// Returns up to five titles similar to {title}. With ?explain=true the
// response carries document IDs and similarity scores as well.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.recommender == nil {
		rw.ServiceUnavailable("Recommendation index not loaded")
		return
	}

	req := TitleRequest{Title: urlParam(r, "title")}
	if !validateRequest(rw, &req) {
		metrics.RecordRecommendation(metrics.OutcomeInvalid, 0, 0)
		return
	}

	explain, _ := strconv.ParseBool(r.URL.Query().Get("explain"))

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	var (
		payload interface{}
		count   int
		err     error
	)
	if explainer, ok := h.recommender.(Explainer); ok && explain {
		var recs []recommend.Recommendation
		recs, err = explainer.Explain(ctx, req.Title)
		count = len(recs)
		payload = ExplainedRecommendationsResponse{Title: req.Title, Recommendations: recs}
	} else {
		var titles []string
		titles, err = h.recommender.Recommend(ctx, req.Title)
		count = len(titles)
		payload = RecommendationsResponse{Title: req.Title, Recommendations: titles}
	}
	duration := time.Since(start)

	switch {
	case err == nil:
		metrics.RecordRecommendation(metrics.OutcomeOK, count, duration)
		rw.Success(payload)
	case errors.Is(err, recommend.ErrNotFound):
		metrics.RecordRecommendation(metrics.OutcomeNotFound, 0, duration)
		logging.Ctx(r.Context()).Debug().
			Str("title", sanitizeLogValue(req.Title)).
			Msg("Recommendation for unknown title")
		rw.NotFound("Title not found in catalog")
	default:
		metrics.RecordRecommendation(metrics.OutcomeError, 0, duration)
		rw.InternalError(err)
	}
}
