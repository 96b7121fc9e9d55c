// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"fmt"
	"net/http"

	"github.com/canonical/dashboard-shell/internal/analytics"
	"github.com/canonical/dashboard-shell/internal/authorization"
	"github.com/canonical/dashboard-shell/internal/catalog"
	"github.com/canonical/dashboard-shell/internal/credentials"
	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/session"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/pkg/authentication"
	"github.com/canonical/dashboard-shell/pkg/dashboard"
	"github.com/canonical/dashboard-shell/pkg/guard"
	"github.com/canonical/dashboard-shell/pkg/metrics"
	"github.com/canonical/dashboard-shell/pkg/resolver"
	"github.com/canonical/dashboard-shell/pkg/status"
	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	c catalog.CatalogInterface,
	creds credentials.StoreInterface,
	sessions session.StoreInterface,
	source analytics.SourceInterface,
	defaultTenant string,
	corsAllowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsAllowedOrigins),
		authentication.NewMiddleware(sessions, tracer, monitor, logger).Session(),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	sessionResolver := resolver.NewResolver(c, sessions, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)
	routeGuard := guard.NewGuard(sessionResolver, authorizer, tracer, monitor, logger)

	authenticationAPI := authentication.NewAPI(
		authentication.NewService(creds, sessions, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	dashboardAPI := dashboard.NewAPI(routeGuard, c, source, creds, tracer, monitor, logger)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, fmt.Sprintf("/%s/signin", defaultTenant), http.StatusSeeOther)
	})

	router.Route("/{tenantSlug}", func(mux chi.Router) {
		mux.Use(middlewareTenantExists(c))

		authenticationAPI.RegisterEndpoints(mux)
		dashboardAPI.RegisterEndpoints(mux)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
