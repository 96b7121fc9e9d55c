// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package analytics

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
)

type Series struct {
	Value float64 `json:"value"`
	// Change is a percentage delta against the previous period.
	Change float64   `json:"change"`
	Trend  []float64 `json:"trend"`
}

type Growth struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type Snapshot struct {
	DailyActiveUsers Series    `json:"daily_active_users"`
	Revenue          Series    `json:"revenue"`
	Engagement       Series    `json:"engagement"`
	UserGrowth       Growth    `json:"user_growth"`
	GeneratedAt      time.Time `json:"generated_at"`
}

type SourceInterface interface {
	Snapshot(ctx context.Context, tenantID string) *Snapshot
}

var _ SourceInterface = (*Source)(nil)

// Source generates mock analytics series per tenant, regenerated when older
// than the refresh interval. It is an opaque data provider: consumers only
// rely on the snapshot shape and the refresh contract.
type Source struct {
	mu      sync.Mutex
	rng     *rand.Rand
	cache   map[string]*Snapshot
	refresh time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSource(
	seed int64,
	refresh time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Source {
	s := new(Source)

	s.rng = rand.New(rand.NewSource(seed))
	s.cache = make(map[string]*Snapshot)
	s.refresh = refresh

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

func (s *Source) Snapshot(ctx context.Context, tenantID string) *Snapshot {
	_, span := s.tracer.Start(ctx, "analytics.Source.Snapshot")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[tenantID]; ok && time.Since(cached.GeneratedAt) < s.refresh {
		return cached
	}

	snapshot := s.generate()
	s.cache[tenantID] = snapshot
	return snapshot
}

func (s *Source) generate() *Snapshot {
	base := float64(s.rng.Intn(1000) + 500)

	return &Snapshot{
		DailyActiveUsers: Series{
			Value:  base,
			Change: float64(s.rng.Intn(20) - 10),
			Trend:  s.trend(30, func() float64 { return float64(s.rng.Intn(100)) + base - 50 }),
		},
		Revenue: Series{
			Value:  float64(s.rng.Intn(50000) + 25000),
			Change: float64(s.rng.Intn(30) - 15),
			Trend:  s.trend(30, func() float64 { return float64(s.rng.Intn(5000) + 20000) }),
		},
		Engagement: Series{
			Value:  float64(s.rng.Intn(100)),
			Change: float64(s.rng.Intn(10) - 5),
			Trend:  s.trend(30, func() float64 { return float64(s.rng.Intn(20) + 70) }),
		},
		UserGrowth: Growth{
			Labels: monthLabels(12),
			Data:   s.trend(12, func() float64 { return float64(s.rng.Intn(500) + 100) }),
		},
		GeneratedAt: time.Now(),
	}
}

func (s *Source) trend(n int, next func() float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = next()
	}
	return values
}

func monthLabels(n int) []string {
	now := time.Now()
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = now.AddDate(0, -(n - 1 - i), 0).Format("Jan")
	}
	return labels
}
