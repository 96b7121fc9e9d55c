// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"slices"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
)

// HasPermission reports whether some permission entry of the user has the
// exact resource and contains the exact action. Duplicate entries for the
// same resource union. No wildcard or glob semantics: absence of a match is
// false, never an error. Pure and total over the user value.
func HasPermission(user *types.User, resource, action string) bool {
	if user == nil {
		return false
	}
	for _, p := range user.Permissions {
		if p.Resource == resource && slices.Contains(p.Actions, action) {
			return true
		}
	}
	return false
}

// MeetsRole reports whether role is at least required in the role hierarchy.
// Roles are checked independently of permissions; one never implies the
// other.
func MeetsRole(role, required types.Role) bool {
	return roleHierarchy[role] >= roleHierarchy[required]
}

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer wraps the pure checks with tracing and audit logging for use at
// route boundaries.
type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) CheckPermission(ctx context.Context, user *types.User, resource, action string) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckPermission")
	defer span.End()

	allowed := HasPermission(user, resource, action)
	if !allowed && user != nil {
		a.logger.Security().AuthzFailure(user.Email, resource+":"+action)
	}
	return allowed
}

func (a *Authorizer) CheckRole(ctx context.Context, user *types.User, required types.Role) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckRole")
	defer span.End()

	if user == nil {
		return false
	}

	allowed := MeetsRole(user.Role, required)
	if !allowed {
		a.logger.Security().AuthzFailure(user.Email, "role:"+string(required))
	}
	return allowed
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
