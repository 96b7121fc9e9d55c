// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/canonical/dashboard-shell/internal/authorization"
	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
	"github.com/canonical/dashboard-shell/pkg/guard"
	chi "github.com/go-chi/chi/v5"
)

type dashboardResponse struct {
	Tenant  *types.Tenant `json:"tenant"`
	User    *types.User   `json:"user"`
	Widgets []Widget      `json:"widgets"`
}

type usersResponse struct {
	Tenant *types.Tenant `json:"tenant"`
	Users  []*types.User `json:"users"`
}

type settingsResponse struct {
	Tenant   *types.Tenant         `json:"tenant"`
	Settings *types.TenantSettings `json:"settings"`
}

type signInPageResponse struct {
	Tenant *types.Tenant `json:"tenant"`
}

type API struct {
	guard     GuardInterface
	catalog   CatalogInterface
	analytics AnalyticsInterface
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	g GuardInterface,
	catalog CatalogInterface,
	analytics AnalyticsInterface,
	directory DirectoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		guard:     g,
		catalog:   catalog,
		analytics: analytics,
		directory: directory,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// RegisterEndpoints mounts the tenant pages on a tenant-scoped router. Every
// page except sign-in sits behind the guard; requirements match the page, not
// the handler body.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/signin", a.signInPage)
	mux.With(a.guard.Protect(guard.Requirement{})).Get("/dashboard", a.dashboard)
	mux.With(a.guard.Protect(guard.Requirement{})).Get("/me", a.me)
	mux.With(a.guard.Protect(guard.Requirement{
		Permission: &types.RequiredPermission{Resource: authorization.USERS_RESOURCE, Action: authorization.READ_ACTION},
	})).Get("/users", a.users)
	mux.With(a.guard.Protect(guard.Requirement{
		Role:       types.RoleAdmin,
		Permission: &types.RequiredPermission{Resource: authorization.SETTINGS_RESOURCE, Action: authorization.READ_ACTION},
	})).Get("/settings", a.settings)
}

// signInPage serves the branding the sign-in form renders with. It is the
// only tenant page reachable without a session.
func (a *API) signInPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dashboard.API.signInPage")
	defer span.End()

	slug := chi.URLParam(r, "tenantSlug")
	tenant, err := a.catalog.Resolve(ctx, slug)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	a.respond(w, signInPageResponse{Tenant: tenant})
}

func (a *API) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dashboard.API.dashboard")
	defer span.End()

	res, ok := guard.ResolutionFromContext(ctx)
	if !ok {
		http.Error(w, "missing resolution", http.StatusInternalServerError)
		return
	}

	snap := a.analytics.Snapshot(ctx, res.Tenant.ID)
	widgets, err := buildView(res.User, snap)
	if err != nil {
		a.logger.Errorf("failed to build dashboard for %s: %v", res.User.Email, err)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}

	a.respond(w, dashboardResponse{Tenant: res.Tenant, User: res.User, Widgets: widgets})
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dashboard.API.me")
	defer span.End()

	res, ok := guard.ResolutionFromContext(ctx)
	if !ok {
		http.Error(w, "missing resolution", http.StatusInternalServerError)
		return
	}

	a.respond(w, res)
}

func (a *API) users(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dashboard.API.users")
	defer span.End()

	res, ok := guard.ResolutionFromContext(ctx)
	if !ok {
		http.Error(w, "missing resolution", http.StatusInternalServerError)
		return
	}

	users := a.directory.ListByTenantID(ctx, res.Tenant.ID)
	a.respond(w, usersResponse{Tenant: res.Tenant, Users: users})
}

func (a *API) settings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dashboard.API.settings")
	defer span.End()

	res, ok := guard.ResolutionFromContext(ctx)
	if !ok {
		http.Error(w, "missing resolution", http.StatusInternalServerError)
		return
	}

	a.respond(w, settingsResponse{Tenant: res.Tenant, Settings: &res.Tenant.Settings})
}

func (a *API) respond(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
