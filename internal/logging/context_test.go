// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if len(id1) != 36 { // UUID format
		t.Errorf("expected 36-character request ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := RequestIDFromContext(ctx); id != "" {
		t.Errorf("expected empty request ID, got %s", id)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if id := RequestIDFromContext(ctx); id != "req-123" {
		t.Errorf("expected req-123, got %s", id)
	}
}

func TestCtx_AddsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-456")

	Ctx(ctx).Info().Msg("handled")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"req-456"`) {
		t.Errorf("expected request_id in output, got: %s", output)
	}
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	logger := LoggerFromContext(context.Background())
	if logger.GetLevel() != Logger().GetLevel() {
		t.Error("expected global logger when context has none")
	}
}
