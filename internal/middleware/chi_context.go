// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package middleware

import (
	"context"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func contextWithChiRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, chimiddleware.RequestIDKey, id)
}
