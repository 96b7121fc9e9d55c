// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/dashboard-shell/internal/types"
)

const (
	READ_ACTION   = "read"
	WRITE_ACTION  = "write"
	DELETE_ACTION = "delete"

	DASHBOARD_RESOURCE = "dashboard"
	USERS_RESOURCE     = "users"
	SETTINGS_RESOURCE  = "settings"
)

// roleHierarchy is the total order over roles. Unknown roles map to 0 and
// therefore never satisfy any requirement.
var roleHierarchy = map[types.Role]int{
	types.RoleViewer:  1,
	types.RoleManager: 2,
	types.RoleAdmin:   3,
}

func RoleLevel(role types.Role) int {
	return roleHierarchy[role]
}
