// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
	"github.com/canonical/dashboard-shell/pkg/authentication"
	"github.com/canonical/dashboard-shell/pkg/resolver"
	chi "github.com/go-chi/chi/v5"
)

// Requirement describes what a guarded route demands. Role and Permission
// may be set independently; both zero means "authenticated only".
type Requirement struct {
	Role       types.Role
	Permission *types.RequiredPermission
}

type resolutionContextKey struct{}

// ResolutionFromContext retrieves the resolution attached by Protect for an
// Allowed request.
func ResolutionFromContext(ctx context.Context) (*types.Resolution, bool) {
	res, ok := ctx.Value(resolutionContextKey{}).(*types.Resolution)
	return res, ok && res != nil
}

type Guard struct {
	resolver ResolverInterface
	authz    AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGuard(
	resolver ResolverInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Guard {
	return &Guard{
		resolver: resolver,
		authz:    authz,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Evaluate runs the guard state machine for one request. It always returns a
// terminal decision: a resolution failure is itself a classification, never
// a retry condition. The resolution is returned alongside Allowed so
// handlers do not resolve twice.
func (g *Guard) Evaluate(ctx context.Context, tenantSlug, sessionToken string, req Requirement) (Decision, *types.Resolution) {
	ctx, span := g.tracer.Start(ctx, "guard.Guard.Evaluate")
	defer span.End()

	res, err := g.resolver.Resolve(ctx, tenantSlug, sessionToken)
	switch {
	case errors.Is(err, resolver.ErrTenantNotFound):
		return DecisionDeniedNoSession, nil
	case errors.Is(err, resolver.ErrTenantMismatch):
		// Isolation violations redirect to the requested tenant's
		// sign-in; the session is left untouched.
		return DecisionDeniedNoSession, nil
	case err != nil:
		g.logger.Errorf("resolution failed for tenant %s: %v", tenantSlug, err)
		return DecisionDeniedNoSession, nil
	}

	if res.User == nil {
		return DecisionDeniedNoSession, res
	}

	if req.Role != "" && !g.authz.CheckRole(ctx, res.User, req.Role) {
		return DecisionDeniedInsufficientRole, res
	}

	if req.Permission != nil && !g.authz.CheckPermission(ctx, res.User, req.Permission.Resource, req.Permission.Action) {
		return DecisionDeniedInsufficientPermission, res
	}

	return DecisionAllowed, res
}

// Protect wraps a handler with the guard. Denied requests are redirected
// before the protected handler runs: no-session outcomes to the tenant's
// sign-in page, insufficient role or permission to the user's own dashboard
// (the user is legitimate, just scoped differently).
func (g *Guard) Protect(req Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := g.tracer.Start(r.Context(), "guard.Guard.Protect")
			defer span.End()

			slug := chi.URLParam(r, "tenantSlug")
			token, _ := authentication.SessionTokenFromContext(ctx)

			decision, res := g.Evaluate(ctx, slug, token, req)
			switch decision {
			case DecisionAllowed:
				ctx = context.WithValue(ctx, resolutionContextKey{}, res)
				next.ServeHTTP(w, r.WithContext(ctx))
			case DecisionDeniedNoSession:
				http.Redirect(w, r, fmt.Sprintf("/%s/signin", slug), http.StatusSeeOther)
			case DecisionDeniedInsufficientRole, DecisionDeniedInsufficientPermission:
				http.Redirect(w, r, fmt.Sprintf("/%s/dashboard", slug), http.StatusSeeOther)
			default:
				// Unreachable: Evaluate always returns a terminal decision.
				http.Error(w, "access check did not complete", http.StatusInternalServerError)
			}
		})
	}
}
