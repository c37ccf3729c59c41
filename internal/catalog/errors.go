// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package catalog

import "errors"

var (
	// ErrNotFound indicates the title is not in the catalog.
	ErrNotFound = errors.New("title not found in catalog")

	// ErrInvalidMonth indicates an unrecognized Spanish month name.
	ErrInvalidMonth = errors.New("invalid month name")

	// ErrInvalidWeekday indicates an unrecognized Spanish weekday name.
	ErrInvalidWeekday = errors.New("invalid weekday name")
)
