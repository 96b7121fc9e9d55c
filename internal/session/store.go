// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/internal/types"
	"github.com/google/uuid"
)

var _ StoreInterface = (*Store)(nil)

type record struct {
	payload   []byte
	expiresAt time.Time
}

// Store is the in-memory session store. Sessions hold an opaque serialized
// user payload keyed by token. The store is the only mutable shared state in
// the system: one writer (sign-in/sign-out), many readers (guards and
// resolvers), guarded by a read-write lock.
//
// Subscribers are notified after a mutation commits and the write lock is
// released, so a callback that re-reads the store always observes the new
// state. Delivery order across subscribers is unspecified.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]record
	subs     map[int]func()
	nextSub  int
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewStore(
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Store {
	s := new(Store)

	s.sessions = make(map[string]record)
	s.subs = make(map[int]func())
	s.lifetime = lifetime

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

func (s *Store) Establish(ctx context.Context, user *types.User) (string, error) {
	_, span := s.tracer.Start(ctx, "session.Store.Establish")
	defer span.End()

	token, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to serialize session payload: %w", err)
	}

	s.mu.Lock()
	s.pruneLocked()
	s.sessions[token.String()] = record{
		payload:   payload,
		expiresAt: time.Now().Add(s.lifetime),
	}
	s.mu.Unlock()

	s.notify()

	return token.String(), nil
}

func (s *Store) Destroy(ctx context.Context, token string) {
	_, span := s.tracer.Start(ctx, "session.Store.Destroy")
	defer span.End()

	s.mu.Lock()
	_, existed := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if existed {
		s.notify()
	}
}

func (s *Store) Current(ctx context.Context, token string) *types.User {
	_, span := s.tracer.Start(ctx, "session.Store.Current")
	defer span.End()

	if token == "" {
		return nil
	}

	s.mu.RLock()
	r, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(r.expiresAt) {
		return nil
	}

	var user types.User
	if err := json.Unmarshal(r.payload, &user); err != nil {
		// Corrupt payload reads as "no session", never a failure.
		s.logger.Warnf("malformed session payload for token %s: %v", token, err)
		return nil
	}

	return &user
}

func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// notify runs outside the write lock; the mutation is already committed.
func (s *Store) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// pruneLocked drops expired sessions. Caller holds the write lock.
func (s *Store) pruneLocked() {
	now := time.Now()
	for token, r := range s.sessions {
		if now.After(r.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
