// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/types"
)

type CatalogInterface interface {
	Resolve(ctx context.Context, slug string) (*types.Tenant, error)
	Exists(ctx context.Context, slug string) bool
	List(ctx context.Context) []*types.Tenant
}
