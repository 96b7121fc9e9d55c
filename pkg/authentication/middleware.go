// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
)

// SessionCookieName is the fixed key the session token travels under.
const SessionCookieName = "dashboard_session"

type Middleware struct {
	sessions SessionStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Session resolves the session cookie into a user and injects both into the
// request context. It never rejects: authorization decisions belong to the
// route guard, and "no session" is a valid state on public surfaces.
func (m *Middleware) Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Session")
			defer span.End()

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			ctx = WithSessionToken(ctx, cookie.Value)
			if user := m.sessions.Current(ctx, cookie.Value); user != nil {
				ctx = WithUser(ctx, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewMiddleware(sessions SessionStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
