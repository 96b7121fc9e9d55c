// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
)

func newTestSource(refresh time.Duration) *Source {
	return NewSource(42, refresh, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestSource_SnapshotShape(t *testing.T) {
	ctx := context.Background()
	s := newTestSource(time.Minute)

	snap := s.Snapshot(ctx, "acme")
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if len(snap.DailyActiveUsers.Trend) != 30 {
		t.Errorf("expected 30 trend points, got %d", len(snap.DailyActiveUsers.Trend))
	}
	if len(snap.UserGrowth.Labels) != 12 || len(snap.UserGrowth.Data) != 12 {
		t.Errorf("expected 12 growth points, got %d labels and %d values",
			len(snap.UserGrowth.Labels), len(snap.UserGrowth.Data))
	}
	if snap.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}

func TestSource_SnapshotCachedWithinRefreshInterval(t *testing.T) {
	ctx := context.Background()
	s := newTestSource(time.Minute)

	first := s.Snapshot(ctx, "acme")
	second := s.Snapshot(ctx, "acme")
	if first != second {
		t.Error("expected cached snapshot within the refresh interval")
	}
}

func TestSource_SnapshotRegeneratedAfterRefreshInterval(t *testing.T) {
	ctx := context.Background()
	s := newTestSource(0)

	first := s.Snapshot(ctx, "acme")
	second := s.Snapshot(ctx, "acme")
	if first == second {
		t.Error("expected a fresh snapshot after the refresh interval elapsed")
	}
}

func TestSource_SnapshotPerTenant(t *testing.T) {
	ctx := context.Background()
	s := newTestSource(time.Minute)

	if s.Snapshot(ctx, "acme") == s.Snapshot(ctx, "globex") {
		t.Error("expected tenants to have independent snapshots")
	}
}
