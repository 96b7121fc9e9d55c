// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"net/http"

	"github.com/canonical/dashboard-shell/internal/analytics"
	"github.com/canonical/dashboard-shell/internal/types"
	"github.com/canonical/dashboard-shell/pkg/guard"
)

// GuardInterface wraps handlers with access requirements.
type GuardInterface interface {
	Protect(req guard.Requirement) func(http.Handler) http.Handler
}

// CatalogInterface resolves tenant slugs for the unguarded sign-in page.
type CatalogInterface interface {
	Resolve(ctx context.Context, slug string) (*types.Tenant, error)
}

// AnalyticsInterface is the opaque metric source consumed by the views.
type AnalyticsInterface interface {
	Snapshot(ctx context.Context, tenantID string) *analytics.Snapshot
}

// DirectoryInterface lists the users of a tenant for the users page.
type DirectoryInterface interface {
	ListByTenantID(ctx context.Context, tenantID string) []*types.User
}
