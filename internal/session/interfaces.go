// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/types"
)

type StoreInterface interface {
	// Establish creates a session bound to the user and returns its token.
	Establish(ctx context.Context, user *types.User) (string, error)
	// Destroy removes the session for the token. Unknown tokens are a no-op.
	Destroy(ctx context.Context, token string)
	// Current returns the user bound to the token, or nil. Malformed and
	// expired payloads read as nil; Current never returns an error.
	Current(ctx context.Context, token string) *types.User
	// Subscribe registers a callback invoked after every committed session
	// change. The returned function unsubscribes it.
	Subscribe(fn func()) func()
}
