// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/canonical/dashboard-shell/internal/analytics"
	"github.com/canonical/dashboard-shell/internal/authorization"
	"github.com/canonical/dashboard-shell/internal/catalog"
	"github.com/canonical/dashboard-shell/internal/credentials"
	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/session"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
	"github.com/canonical/dashboard-shell/pkg/authentication"
	"github.com/canonical/dashboard-shell/pkg/guard"
	"github.com/canonical/dashboard-shell/pkg/resolver"
	chi "github.com/go-chi/chi/v5"
)

type fixture struct {
	router   http.Handler
	sessions *session.Store
	creds    *credentials.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	c, err := catalog.NewCatalog(catalog.DefaultTenants(), tracer, monitor, logger)
	if err != nil {
		t.Fatal(err)
	}
	creds, err := credentials.NewStore(credentials.DefaultCredentials(), tracer, monitor, logger)
	if err != nil {
		t.Fatal(err)
	}
	sessions := session.NewStore(time.Hour, tracer, monitor, logger)
	r := resolver.NewResolver(c, sessions, tracer, monitor, logger)
	authz := authorization.NewAuthorizer(tracer, monitor, logger)
	g := guard.NewGuard(r, authz, tracer, monitor, logger)
	source := analytics.NewSource(1, time.Minute, tracer, monitor, logger)

	api := NewAPI(g, c, source, creds, tracer, monitor, logger)

	mux := chi.NewMux()
	mux.Use(authentication.NewMiddleware(sessions, tracer, monitor, logger).Session())
	mux.Route("/{tenantSlug}", func(tr chi.Router) {
		api.RegisterEndpoints(tr)
	})

	return &fixture{router: mux, sessions: sessions, creds: creds}
}

func (f *fixture) signIn(t *testing.T, email, secret string) string {
	t.Helper()

	ctx := context.Background()
	user, err := f.creds.Authenticate(ctx, email, secret)
	if err != nil {
		t.Fatalf("failed to authenticate %s: %v", email, err)
	}
	token, err := f.sessions.Establish(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func (f *fixture) get(path, token string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: authentication.SessionCookieName, Value: token})
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, r)
	return rr
}

func widgetIDs(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()

	var resp dashboardResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode dashboard response: %v", err)
	}
	ids := make([]string, 0, len(resp.Widgets))
	for _, w := range resp.Widgets {
		ids = append(ids, w.ID)
	}
	return ids
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func TestAPI_DashboardPerRole(t *testing.T) {
	f := newFixture(t)

	testCases := []struct {
		name     string
		email    string
		secret   string
		expected []string
		absent   []string
	}{
		{
			name:     "admin sees management widgets",
			email:    "admin@acme.com",
			secret:   "admin123",
			expected: []string{"daily-active-users", "revenue", "user-management", "tenant-settings"},
		},
		{
			name:     "manager sees team widgets but not settings",
			email:    "manager@acme.com",
			secret:   "manager123",
			expected: []string{"daily-active-users", "team-overview"},
			absent:   []string{"tenant-settings", "user-management"},
		},
		{
			name:     "viewer sees read-only widgets",
			email:    "viewer@acme.com",
			secret:   "viewer123",
			expected: []string{"daily-active-users", "engagement"},
			absent:   []string{"revenue", "team-overview", "user-management", "tenant-settings"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token := f.signIn(t, tc.email, tc.secret)
			rr := f.get("/acme/dashboard", token)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}

			ids := widgetIDs(t, rr)
			for _, id := range tc.expected {
				if !contains(ids, id) {
					t.Errorf("expected widget %s, got %v", id, ids)
				}
			}
			for _, id := range tc.absent {
				if contains(ids, id) {
					t.Errorf("unexpected widget %s in %v", id, ids)
				}
			}
		})
	}
}

func TestAPI_DashboardRequiresSession(t *testing.T) {
	f := newFixture(t)

	rr := f.get("/acme/dashboard", "")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/acme/signin" {
		t.Errorf("expected redirect to /acme/signin, got %s", got)
	}
}

func TestAPI_UsersRequiresPermission(t *testing.T) {
	f := newFixture(t)

	// The viewer has no users:read grant: redirected to their dashboard.
	viewerToken := f.signIn(t, "viewer@acme.com", "viewer123")
	rr := f.get("/acme/users", viewerToken)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for viewer, got %d", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/acme/dashboard" {
		t.Errorf("expected redirect to /acme/dashboard, got %s", got)
	}

	// The manager holds users:read without the admin role.
	managerToken := f.signIn(t, "manager@acme.com", "manager123")
	rr = f.get("/acme/users", managerToken)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for manager, got %d", rr.Code)
	}

	var resp usersResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Users) != 3 {
		t.Errorf("expected the 3 acme users, got %d", len(resp.Users))
	}
	for _, u := range resp.Users {
		if u.TenantID != "acme" {
			t.Errorf("user %s leaked from tenant %s", u.Email, u.TenantID)
		}
	}
}

func TestAPI_SettingsRequiresAdmin(t *testing.T) {
	f := newFixture(t)

	managerToken := f.signIn(t, "manager@acme.com", "manager123")
	rr := f.get("/acme/settings", managerToken)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for manager, got %d", rr.Code)
	}

	adminToken := f.signIn(t, "admin@acme.com", "admin123")
	rr = f.get("/acme/settings", adminToken)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rr.Code)
	}

	var resp settingsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Settings == nil || resp.Settings.MaxUsers == 0 {
		t.Error("expected tenant settings in the response")
	}
}

func TestAPI_Me(t *testing.T) {
	f := newFixture(t)

	token := f.signIn(t, "viewer@acme.com", "viewer123")
	rr := f.get("/acme/me", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var res types.Resolution
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Tenant == nil || res.Tenant.Slug != "acme" {
		t.Error("expected the acme tenant in the resolution")
	}
	if res.User == nil || res.User.Email != "viewer@acme.com" {
		t.Error("expected the signed-in user in the resolution")
	}
}

func TestAPI_SignInPage(t *testing.T) {
	f := newFixture(t)

	rr := f.get("/acme/signin", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected the sign-in page without a session, got %d", rr.Code)
	}

	var resp signInPageResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Tenant == nil || resp.Tenant.Theme.PrimaryColor == "" {
		t.Error("expected tenant branding on the sign-in page")
	}

	rr = f.get("/initech/signin", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown tenant, got %d", rr.Code)
	}
}

func TestViewForRoleIsExhaustive(t *testing.T) {
	for _, role := range []types.Role{types.RoleViewer, types.RoleManager, types.RoleAdmin} {
		if _, err := viewForRole(role); err != nil {
			t.Errorf("no view for role %s: %v", role, err)
		}
	}
	if _, err := viewForRole(types.Role("auditor")); err == nil {
		t.Error("expected an error for an unknown role")
	}
}
