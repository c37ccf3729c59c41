// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package api

import (
	"errors"
	"net/http"

	"github.com/sebastiandiazro/MLOps-1/internal/catalog"
	"github.com/sebastiandiazro/MLOps-1/internal/metrics"
)

// Catalog query names used as metric labels.
const (
	queryScore   = "score"
	queryVotes   = "votes"
	queryMonth   = "month"
	queryWeekday = "weekday"
)

// MovieScore handles GET /api/v1/movies/{title}/score.
func (h *Handler) MovieScore(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := h.titleRequest(rw, r, queryScore)
	if !ok {
		return
	}

	info, err := h.catalog.Score(req.Title)
	h.respondCatalog(rw, queryScore, info, err)
}

// MovieVotes handles GET /api/v1/movies/{title}/votes.
// The average is only included when the title reaches the vote minimum.
func (h *Handler) MovieVotes(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, ok := h.titleRequest(rw, r, queryVotes)
	if !ok {
		return
	}

	info, err := h.catalog.Votes(req.Title, h.minVotes)
	h.respondCatalog(rw, queryVotes, info, err)
}

// ReleasesByMonth handles GET /api/v1/releases/month/{month}.
// {month} is a Spanish month name such as "enero".
func (h *Handler) ReleasesByMonth(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.catalog == nil {
		rw.ServiceUnavailable("Catalog not loaded")
		return
	}

	req := MonthRequest{Month: urlParam(r, "month")}
	if !validateRequest(rw, &req) {
		metrics.RecordCatalogQuery(queryMonth, metrics.OutcomeInvalid)
		return
	}

	month, count, err := h.catalog.CountByMonth(req.Month)
	h.respondCatalog(rw, queryMonth, MonthCountResponse{
		Month:       req.Month,
		MonthNumber: int(month),
		Count:       count,
	}, err)
}

// ReleasesByWeekday handles GET /api/v1/releases/weekday/{day}.
// {day} is a Spanish weekday name; accents are optional.
func (h *Handler) ReleasesByWeekday(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.catalog == nil {
		rw.ServiceUnavailable("Catalog not loaded")
		return
	}

	req := WeekdayRequest{Day: urlParam(r, "day")}
	if !validateRequest(rw, &req) {
		metrics.RecordCatalogQuery(queryWeekday, metrics.OutcomeInvalid)
		return
	}

	day, count, err := h.catalog.CountByWeekday(req.Day)
	h.respondCatalog(rw, queryWeekday, WeekdayCountResponse{
		Day:       req.Day,
		DayNumber: int(day),
		Count:     count,
	}, err)
}

func (h *Handler) titleRequest(rw *ResponseWriter, r *http.Request, query string) (TitleRequest, bool) {
	if h.catalog == nil {
		rw.ServiceUnavailable("Catalog not loaded")
		return TitleRequest{}, false
	}

	req := TitleRequest{Title: urlParam(r, "title")}
	if !validateRequest(rw, &req) {
		metrics.RecordCatalogQuery(query, metrics.OutcomeInvalid)
		return TitleRequest{}, false
	}
	return req, true
}

// respondCatalog maps catalog errors to HTTP responses and records the outcome.
func (h *Handler) respondCatalog(rw *ResponseWriter, query string, data interface{}, err error) {
	switch {
	case err == nil:
		metrics.RecordCatalogQuery(query, metrics.OutcomeOK)
		rw.Success(data)
	case errors.Is(err, catalog.ErrNotFound):
		metrics.RecordCatalogQuery(query, metrics.OutcomeNotFound)
		rw.NotFound("Title not found in catalog")
	case errors.Is(err, catalog.ErrInvalidMonth):
		metrics.RecordCatalogQuery(query, metrics.OutcomeInvalid)
		rw.BadRequest(ErrCodeInvalidMonth, "Unknown month name, expected enero to diciembre")
	case errors.Is(err, catalog.ErrInvalidWeekday):
		metrics.RecordCatalogQuery(query, metrics.OutcomeInvalid)
		rw.BadRequest(ErrCodeInvalidWeekday, "Unknown day name, expected lunes to domingo")
	default:
		metrics.RecordCatalogQuery(query, metrics.OutcomeError)
		rw.InternalError(err)
	}
}
