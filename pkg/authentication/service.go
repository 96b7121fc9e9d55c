// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	authenticator AuthenticatorInterface
	sessions      SessionStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	authenticator AuthenticatorInterface,
	sessions SessionStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		authenticator: authenticator,
		sessions:      sessions,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// SignIn verifies the credentials and establishes a session. The error is
// the credential store's single opaque failure value; callers must not
// surface anything more specific.
func (s *Service) SignIn(ctx context.Context, email, secret string) (string, *types.User, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.SignIn")
	defer span.End()

	user, err := s.authenticator.Authenticate(ctx, email, secret)
	if err != nil {
		return "", nil, err
	}

	token, err := s.sessions.Establish(ctx, user)
	if err != nil {
		s.logger.Errorf("failed to establish session for %s: %v", email, err)
		return "", nil, err
	}

	return token, user, nil
}

func (s *Service) SignOut(ctx context.Context, token string) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.SignOut")
	defer span.End()

	if user := s.sessions.Current(ctx, token); user != nil {
		s.logger.Security().SessionDestroyed(user.Email)
	}
	s.sessions.Destroy(ctx, token)
}
