// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

// Package validation wraps go-playground/validator v10 behind a process-wide
// validator instance and translates its field errors into the API's
// VALIDATION_ERROR shape.
//
// Field names in messages come from the `json` tag, so a failure on
//
//	type titleRequest struct {
//	    Title string `json:"title" validate:"required,notblank,max=500"`
//	}
//
// reads "title must not be blank" rather than mentioning the Go field name.
//
// Custom tags:
//
//	notblank   string contains at least one non-whitespace rune
package validation
