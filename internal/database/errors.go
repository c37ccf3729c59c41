// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package database

import (
	"errors"
	"io"

	"github.com/sebastiandiazro/MLOps-1/internal/logging"
)

var (
	// ErrDatasetNotFound is returned when the dataset file does not exist.
	ErrDatasetNotFound = errors.New("dataset file not found")

	// ErrUnsupportedFormat is returned when the dataset format cannot be
	// resolved to parquet or csv.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource in an error path where a Close error is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
