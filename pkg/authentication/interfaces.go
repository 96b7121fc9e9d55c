// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/types"
)

// AuthenticatorInterface is the subset of the credential store this package
// needs.
type AuthenticatorInterface interface {
	Authenticate(ctx context.Context, email, secret string) (*types.User, error)
}

// SessionStoreInterface is the subset of the session store this package
// needs.
type SessionStoreInterface interface {
	Establish(ctx context.Context, user *types.User) (string, error)
	Destroy(ctx context.Context, token string)
	Current(ctx context.Context, token string) *types.User
}

type ServiceInterface interface {
	SignIn(ctx context.Context, email, secret string) (string, *types.User, error)
	SignOut(ctx context.Context, token string)
}
