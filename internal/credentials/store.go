// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sort"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
	"github.com/go-playground/validator/v10"
)

// ErrAuthenticationFailed is the single failure value for every
// authentication outcome. Unknown email and wrong secret are deliberately
// indistinguishable to the caller so accounts cannot be enumerated.
var ErrAuthenticationFailed = fmt.Errorf("authentication failed")

// Credential pairs a user record with its authentication secret.
//
// Secrets are compared in plaintext. This is an inherited simplification of
// the demo credential set, kept on purpose; the Authenticate contract does
// not change when a hash verifier replaces the comparison.
type Credential struct {
	User   *types.User `yaml:"user" validate:"required"`
	Secret string      `yaml:"secret" validate:"required"`
}

var (
	_ AuthenticatorInterface = (*Store)(nil)
	_ DirectoryInterface     = (*Store)(nil)
)

// Store is the in-memory credential registry keyed by email. Email lookup is
// case-sensitive: that is a pinned policy, not an oversight.
type Store struct {
	records map[string]Credential

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewStore(
	credentials []Credential,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Store, error) {
	validate := validator.New()

	s := new(Store)
	s.records = make(map[string]Credential, len(credentials))
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	for _, c := range credentials {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("invalid credential record: %w", err)
		}
		if err := validate.Struct(c.User); err != nil {
			return nil, fmt.Errorf("invalid user record %q: %w", c.User.Email, err)
		}
		if _, ok := s.records[c.User.Email]; ok {
			return nil, fmt.Errorf("duplicate email %q", c.User.Email)
		}
		s.records[c.User.Email] = c
	}

	return s, nil
}

func (s *Store) Authenticate(ctx context.Context, email, secret string) (*types.User, error) {
	_, span := s.tracer.Start(ctx, "credentials.Store.Authenticate")
	defer span.End()

	record, ok := s.records[email]
	if !ok {
		// Burn a comparison anyway so the two failure causes stay
		// indistinguishable by timing.
		subtle.ConstantTimeCompare([]byte(secret), []byte(secret))
		s.logger.Security().AuthnFailure(email)
		return nil, ErrAuthenticationFailed
	}

	if subtle.ConstantTimeCompare([]byte(record.Secret), []byte(secret)) != 1 {
		s.logger.Security().AuthnFailure(email)
		return nil, ErrAuthenticationFailed
	}

	s.logger.Security().AuthnSuccess(email)
	return record.User, nil
}

func (s *Store) ListByTenantID(ctx context.Context, tenantID string) []*types.User {
	_, span := s.tracer.Start(ctx, "credentials.Store.ListByTenantID")
	defer span.End()

	var users []*types.User
	for _, c := range s.records {
		if c.User.TenantID == tenantID {
			users = append(users, c.User)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })

	return users
}
