// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package api

// MaxTitleLength bounds the title path parameter.
const MaxTitleLength = 500

// TitleRequest is the path parameter of the per-title endpoints.
type TitleRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
}

// MonthRequest is the path parameter of the monthly release count.
type MonthRequest struct {
	Month string `json:"month" validate:"required,notblank,max=20"`
}

// WeekdayRequest is the path parameter of the weekday release count.
type WeekdayRequest struct {
	Day string `json:"day" validate:"required,notblank,max=20"`
}

// RecommendationsResponse is the payload of the recommendations endpoint.
type RecommendationsResponse struct {
	Title           string   `json:"title"`
	Recommendations []string `json:"recommendations"`
}

// ExplainedRecommendationsResponse is returned when explain=true.
type ExplainedRecommendationsResponse struct {
	Title           string      `json:"title"`
	Recommendations interface{} `json:"recommendations"`
}

// MonthCountResponse is the payload of the monthly release count.
type MonthCountResponse struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"month_number"`
	Count       int    `json:"count"`
}

// WeekdayCountResponse is the payload of the weekday release count.
type WeekdayCountResponse struct {
	Day       string `json:"day"`
	DayNumber int    `json:"day_number"`
	Count     int    `json:"count"`
}

// ReadyResponse is the readiness payload.
type ReadyResponse struct {
	Status        string  `json:"status"`
	Documents     int     `json:"documents"`
	Vocabulary    int     `json:"vocabulary"`
	NonZero       int     `json:"non_zero"`
	ZeroVectors   int     `json:"zero_vectors"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
