// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"fmt"

	"github.com/canonical/dashboard-shell/internal/catalog"
	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
)

var (
	// ErrTenantNotFound mirrors the catalog sentinel for callers that only
	// import this package.
	ErrTenantNotFound = catalog.ErrTenantNotFound

	// ErrTenantMismatch is an isolation violation: the session's user does
	// not belong to the requested tenant. It is never auto-corrected and
	// the session is left untouched.
	ErrTenantMismatch = fmt.Errorf("user does not belong to the requested tenant")
)

var _ ResolverInterface = (*Resolver)(nil)

type Resolver struct {
	catalog  CatalogInterface
	sessions SessionReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(
	catalog CatalogInterface,
	sessions SessionReaderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	return &Resolver{
		catalog:  catalog,
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Resolve binds the ambient session to the requested tenant. The result is
// never cached: every call reads the current session state, so a resolution
// that runs after a session change observes it.
//
// A resolution with a nil user is valid (sign-in page and other public
// surfaces). A cross-tenant pair is never returned under any circumstance.
func (r *Resolver) Resolve(ctx context.Context, tenantSlug, sessionToken string) (*types.Resolution, error) {
	ctx, span := r.tracer.Start(ctx, "resolver.Resolver.Resolve")
	defer span.End()

	tenant, err := r.catalog.Resolve(ctx, tenantSlug)
	if err != nil {
		return nil, err
	}

	user := r.sessions.Current(ctx, sessionToken)
	if user == nil {
		return &types.Resolution{Tenant: tenant}, nil
	}

	if user.TenantID != tenant.ID {
		r.logger.Security().AuthzFailure(user.Email, "tenant:"+tenant.ID)
		return nil, ErrTenantMismatch
	}

	return &types.Resolution{Tenant: tenant, User: user}, nil
}
