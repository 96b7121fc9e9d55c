// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

// Decision is the closed outcome set of a guard evaluation. Allowed is the
// only state that renders protected content; every Denied state redirects
// and writes nothing else, so protected content never flashes.
type Decision int

const (
	DecisionChecking Decision = iota
	DecisionAllowed
	DecisionDeniedNoSession
	DecisionDeniedInsufficientRole
	DecisionDeniedInsufficientPermission
)

func (d Decision) String() string {
	switch d {
	case DecisionChecking:
		return "checking"
	case DecisionAllowed:
		return "allowed"
	case DecisionDeniedNoSession:
		return "denied_no_session"
	case DecisionDeniedInsufficientRole:
		return "denied_insufficient_role"
	case DecisionDeniedInsufficientPermission:
		return "denied_insufficient_permission"
	default:
		return "unknown"
	}
}

// Terminal reports whether the decision is final. Checking is the only
// non-terminal state; an evaluation must never be left there.
func (d Decision) Terminal() bool {
	return d != DecisionChecking
}
