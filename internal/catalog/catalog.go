// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
	"github.com/go-playground/validator/v10"
)

var ErrTenantNotFound = fmt.Errorf("tenant not found")

var _ CatalogInterface = (*Catalog)(nil)

// Catalog is the read-only tenant registry. Records are provisioned
// out-of-band (embedded seed or catalog file) and never mutated at runtime,
// so lookups are lock-free.
type Catalog struct {
	tenants map[string]*types.Tenant

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewCatalog(
	tenants []*types.Tenant,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Catalog, error) {
	validate := validator.New()

	c := new(Catalog)
	c.tenants = make(map[string]*types.Tenant, len(tenants))
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	for _, t := range tenants {
		if err := validate.Struct(t); err != nil {
			return nil, fmt.Errorf("invalid tenant record %q: %w", t.Slug, err)
		}
		if _, ok := c.tenants[t.Slug]; ok {
			return nil, fmt.Errorf("duplicate tenant slug %q", t.Slug)
		}
		c.tenants[t.Slug] = t
	}

	return c, nil
}

func (c *Catalog) Resolve(ctx context.Context, slug string) (*types.Tenant, error) {
	_, span := c.tracer.Start(ctx, "catalog.Catalog.Resolve")
	defer span.End()

	t, ok := c.tenants[slug]
	if !ok {
		return nil, ErrTenantNotFound
	}
	return t, nil
}

func (c *Catalog) Exists(ctx context.Context, slug string) bool {
	_, span := c.tracer.Start(ctx, "catalog.Catalog.Exists")
	defer span.End()

	_, ok := c.tenants[slug]
	return ok
}

func (c *Catalog) List(ctx context.Context) []*types.Tenant {
	_, span := c.tracer.Start(ctx, "catalog.Catalog.List")
	defer span.End()

	tenants := make([]*types.Tenant, 0, len(c.tenants))
	for _, t := range c.tenants {
		tenants = append(tenants, t)
	}
	sort.Slice(tenants, func(i, j int) bool { return tenants[i].Slug < tenants[j].Slug })

	return tenants
}
