// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/types"
)

type AuthenticatorInterface interface {
	Authenticate(ctx context.Context, email, secret string) (*types.User, error)
}

type DirectoryInterface interface {
	ListByTenantID(ctx context.Context, tenantID string) []*types.User
}

type StoreInterface interface {
	AuthenticatorInterface
	DirectoryInterface
}
