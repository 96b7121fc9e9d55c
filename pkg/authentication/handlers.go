// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// genericFailureMessage is surfaced for every sign-in failure. The cause is
// never distinguishable from the response.
const genericFailureMessage = "invalid email or password"

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	User     *types.User `json:"user"`
	Redirect string      `json:"redirect"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the sign-in surface on a tenant-scoped router.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/signin", a.signIn)
	mux.Post("/signout", a.signOut)
}

func (a *API) signIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.signIn")
	defer span.End()

	slug := chi.URLParam(r, "tenantSlug")

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.failureResponse(w)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.failureResponse(w)
		return
	}

	token, user, err := a.service.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		a.failureResponse(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(signInResponse{
		User:     user,
		Redirect: fmt.Sprintf("/%s/dashboard", slug),
	}); err != nil {
		a.logger.Errorf("failed to encode sign-in response: %v", err)
	}
}

func (a *API) signOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.signOut")
	defer span.End()

	slug := chi.URLParam(r, "tenantSlug")

	if token, ok := SessionTokenFromContext(ctx); ok {
		a.service.SignOut(ctx, token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	http.Redirect(w, r, fmt.Sprintf("/%s/signin", slug), http.StatusSeeOther)
}

func (a *API) failureResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": genericFailureMessage,
	}); err != nil {
		a.logger.Errorf("failed to encode failure response: %v", err)
	}
}
