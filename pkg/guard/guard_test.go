// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/canonical/dashboard-shell/internal/authorization"
	"github.com/canonical/dashboard-shell/internal/catalog"
	"github.com/canonical/dashboard-shell/internal/credentials"
	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/session"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
	"github.com/canonical/dashboard-shell/pkg/authentication"
	"github.com/canonical/dashboard-shell/pkg/resolver"
	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package guard -destination ./mock_guard.go -source=./interfaces.go

type fixture struct {
	guard    *Guard
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

	return &fixture{
		guard:    NewGuard(r, authz, tracer, monitor, logger),
		sessions: sessions,
		creds:    creds,
	}
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

func TestGuard_Evaluate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	adminToken := f.signIn(t, "admin@acme.com", "admin123")
	managerToken := f.signIn(t, "manager@acme.com", "manager123")
	viewerToken := f.signIn(t, "viewer@acme.com", "viewer123")

	testCases := []struct {
		name     string
		slug     string
		token    string
		req      Requirement
		expected Decision
	}{
		{
			name:     "authenticated only, admin session",
			slug:     "acme",
			token:    adminToken,
			req:      Requirement{},
			expected: DecisionAllowed,
		},
		{
			name:     "no session",
			slug:     "acme",
			token:    "",
			req:      Requirement{},
			expected: DecisionDeniedNoSession,
		},
		{
			name:     "unknown tenant",
			slug:     "initech",
			token:    adminToken,
			req:      Requirement{},
			expected: DecisionDeniedNoSession,
		},
		{
			name:     "cross-tenant session",
			slug:     "globex",
			token:    adminToken,
			req:      Requirement{},
			expected: DecisionDeniedNoSession,
		},
		{
			name:     "viewer fails admin role requirement",
			slug:     "acme",
			token:    viewerToken,
			req:      Requirement{Role: types.RoleAdmin},
			expected: DecisionDeniedInsufficientRole,
		},
		{
			// At-least-role semantics: admin passes a manager-gated route.
			name:     "admin passes manager role requirement",
			slug:     "acme",
			token:    adminToken,
			req:      Requirement{Role: types.RoleManager},
			expected: DecisionAllowed,
		},
		{
			name:     "manager passes reflexive role requirement",
			slug:     "acme",
			token:    managerToken,
			req:      Requirement{Role: types.RoleManager},
			expected: DecisionAllowed,
		},
		{
			name:     "viewer fails settings permission",
			slug:     "acme",
			token:    viewerToken,
			req:      Requirement{Permission: &types.RequiredPermission{Resource: "settings", Action: "read"}},
			expected: DecisionDeniedInsufficientPermission,
		},
		{
			name:  "role and permission both required, one missing",
			slug:  "acme",
			token: managerToken,
			req: Requirement{
				Role:       types.RoleManager,
				Permission: &types.RequiredPermission{Resource: "settings", Action: "read"},
			},
			expected: DecisionDeniedInsufficientPermission,
		},
		{
			name:  "role and permission both satisfied",
			slug:  "acme",
			token: adminToken,
			req: Requirement{
				Role:       types.RoleAdmin,
				Permission: &types.RequiredPermission{Resource: "settings", Action: "write"},
			},
			expected: DecisionAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decision, _ := f.guard.Evaluate(ctx, tc.slug, tc.token, tc.req)
			if decision != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, decision)
			}
			if !decision.Terminal() {
				t.Error("evaluation must always end in a terminal decision")
			}
		})
	}
}

func TestGuard_EvaluateReflectsSignOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	token := f.signIn(t, "admin@acme.com", "admin123")

	decision, _ := f.guard.Evaluate(ctx, "acme", token, Requirement{})
	if decision != DecisionAllowed {
		t.Fatalf("expected Allowed before sign-out, got %s", decision)
	}

	f.sessions.Destroy(ctx, token)

	decision, _ = f.guard.Evaluate(ctx, "acme", token, Requirement{})
	if decision != DecisionDeniedNoSession {
		t.Errorf("expected DeniedNoSession after sign-out, got %s", decision)
	}
}

func TestGuard_EvaluateResolverFailureIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := NewMockResolverInterface(ctrl)
	mockResolver.EXPECT().
		Resolve(gomock.Any(), "acme", "token").
		Return(nil, errors.New("session store unavailable"))

	g := NewGuard(
		mockResolver,
		authorization.NewAuthorizer(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	decision, res := g.Evaluate(context.Background(), "acme", "token", Requirement{})
	if decision != DecisionDeniedNoSession {
		t.Errorf("expected an unexpected failure to classify as DeniedNoSession, got %s", decision)
	}
	if res != nil {
		t.Error("expected no resolution on failure")
	}
	if !decision.Terminal() {
		t.Error("failure must be a terminal classification, not a retry condition")
	}
}

func protectedRouter(f *fixture, req Requirement) http.Handler {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	mux.Use(authentication.NewMiddleware(f.sessions, tracer, monitor, logger).Session())
	mux.With(f.guard.Protect(req)).Get("/{tenantSlug}/secret", func(w http.ResponseWriter, r *http.Request) {
		res, ok := ResolutionFromContext(r.Context())
		if !ok {
			http.Error(w, "missing resolution", http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "secret for %s", res.User.Email)
	})
	return mux
}

func TestGuard_ProtectRedirects(t *testing.T) {
	f := newFixture(t)
	viewerToken := f.signIn(t, "viewer@acme.com", "viewer123")

	testCases := []struct {
		name             string
		path             string
		token            string
		req              Requirement
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:           "allowed renders protected content",
			path:           "/acme/secret",
			token:          viewerToken,
			req:            Requirement{},
			expectedStatus: http.StatusOK,
		},
		{
			name:             "no session redirects to tenant sign-in",
			path:             "/acme/secret",
			token:            "",
			req:              Requirement{},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/acme/signin",
		},
		{
			name:             "insufficient role redirects to own dashboard",
			path:             "/acme/secret",
			token:            viewerToken,
			req:              Requirement{Role: types.RoleAdmin},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/acme/dashboard",
		},
		{
			name:             "cross-tenant session redirects to requested tenant sign-in",
			path:             "/globex/secret",
			token:            viewerToken,
			req:              Requirement{},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/globex/signin",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := protectedRouter(f, tc.req)

			r := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				r.AddCookie(&http.Cookie{Name: authentication.SessionCookieName, Value: tc.token})
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, r)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
			if tc.expectedLocation != "" {
				if got := rr.Header().Get("Location"); got != tc.expectedLocation {
					t.Errorf("expected redirect to %s, got %s", tc.expectedLocation, got)
				}
				// No flash of protected content on denial.
				if body := rr.Body.String(); len(body) > 0 && body != "<a href=\""+tc.expectedLocation+"\">See Other</a>.\n\n" {
					t.Errorf("denied response leaked content: %q", body)
				}
			}
		})
	}
}
