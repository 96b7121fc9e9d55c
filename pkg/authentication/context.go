// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/types"
)

// Define private custom types to avoid collisions
type userContextKey struct{}
type tokenContextKey struct{}

// WithUser returns a new context carrying the resolved session user.
func WithUser(ctx context.Context, user *types.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the session user from the context.
// Returns nil and false if no user is present.
func UserFromContext(ctx context.Context) (*types.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*types.User)
	return user, ok && user != nil
}

// WithSessionToken returns a new context carrying the raw session token.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// SessionTokenFromContext retrieves the raw session token from the context.
func SessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}
