// MLOps-1 - Movie Recommendation Service
// Copyright 2026 MLOps-1 contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sebastiandiazro/MLOps-1

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) Purge() int {
	p.calls.Add(1)
	return 1
}

func TestCacheJanitorService_Interface(t *testing.T) {
	var _ suture.Service = (*CacheJanitorService)(nil)
}

func TestNewCacheJanitorService_DefaultInterval(t *testing.T) {
	svc := NewCacheJanitorService(&countingPurger{}, 0, zerolog.Nop())
	if svc.interval != DefaultJanitorInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultJanitorInterval)
	}
	if svc.String() != "cache-janitor" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheJanitorService_PurgesPeriodically(t *testing.T) {
	purger := &countingPurger{}
	svc := NewCacheJanitorService(purger, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for purger.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d purges before deadline", purger.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
