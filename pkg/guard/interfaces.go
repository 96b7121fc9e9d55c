// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/types"
)

// ResolverInterface is the subset of the session resolver this package
// needs.
type ResolverInterface interface {
	Resolve(ctx context.Context, tenantSlug, sessionToken string) (*types.Resolution, error)
}

// AuthorizerInterface is the subset of the authorizer this package needs.
type AuthorizerInterface interface {
	CheckPermission(ctx context.Context, user *types.User, resource, action string) bool
	CheckRole(ctx context.Context, user *types.User, required types.Role) bool
}
