// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit events on a fixed schema, separate from
// application logging so the events survive log level changes.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.l.Info("authentication succeeded",
		zap.String("event", "authn_success"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) AuthnFailure(subject string) {
	s.l.Warn("authentication failed",
		zap.String("event", "authn_failure"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, permission string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("permission", permission),
	)
}

func (s *SecurityLogger) SessionDestroyed(subject string) {
	s.l.Info("session destroyed",
		zap.String("event", "session_destroyed"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}
