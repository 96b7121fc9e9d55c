// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/types"
)

// CatalogInterface is the subset of the tenant catalog this package needs.
type CatalogInterface interface {
	Resolve(ctx context.Context, slug string) (*types.Tenant, error)
}

// SessionReaderInterface is the read side of the session store.
type SessionReaderInterface interface {
	Current(ctx context.Context, token string) *types.User
}

type ResolverInterface interface {
	Resolve(ctx context.Context, tenantSlug, sessionToken string) (*types.Resolution, error)
}
