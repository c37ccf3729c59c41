// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))

	logger.Warn("service restarted",
		slog.String("service", "http-server"),
		slog.Int("attempt", 2),
		slog.Duration("backoff", time.Second),
	)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"http-server"`,
		`"attempt":2`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf))).
		With(slog.String("tree", "root")).
		WithGroup("event")

	logger.Info("terminated", slog.String("reason", "shutdown"))

	output := buf.String()
	if !strings.Contains(output, `"event.tree":"root"`) && !strings.Contains(output, `"tree":"root"`) {
		t.Errorf("expected tree attribute, got: %s", output)
	}
	if !strings.Contains(output, `"event.reason":"shutdown"`) {
		t.Errorf("expected grouped attribute, got: %s", output)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(NewTestLogger(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}
