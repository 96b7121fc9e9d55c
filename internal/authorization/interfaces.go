// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/types"
)

type AuthorizerInterface interface {
	// CheckPermission reports whether the user may perform action on resource.
	CheckPermission(ctx context.Context, user *types.User, resource, action string) bool
	// CheckRole reports whether the user's role meets the required role.
	CheckRole(ctx context.Context, user *types.User, required types.Role) bool
}
