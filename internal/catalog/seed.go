// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"github.com/canonical/dashboard-shell/internal/types"
)

// DefaultTenants returns the embedded demo catalog used when no catalog file
// is configured.
func DefaultTenants() []*types.Tenant {
	return []*types.Tenant{
		{
			ID:   "acme",
			Slug: "acme",
			Name: "Acme Corporation",
			Theme: types.TenantTheme{
				PrimaryColor:   "#3B82F6",
				SecondaryColor: "#10B981",
			},
			Settings: types.TenantSettings{
				AllowedRoles: []types.Role{types.RoleAdmin, types.RoleManager, types.RoleViewer},
				Features:     []string{"analytics", "user-management", "real-time"},
				MaxUsers:     100,
			},
		},
		{
			ID:   "globex",
			Slug: "globex",
			Name: "Globex Corporation",
			Theme: types.TenantTheme{
				PrimaryColor:   "#7C3AED",
				SecondaryColor: "#F59E0B",
			},
			Settings: types.TenantSettings{
				AllowedRoles: []types.Role{types.RoleAdmin, types.RoleManager, types.RoleViewer},
				Features:     []string{"analytics", "user-management"},
				MaxUsers:     50,
			},
		},
	}
}

// DefaultTheme is applied when a tenant record carries no branding.
func DefaultTheme() types.TenantTheme {
	return types.TenantTheme{
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#10B981",
	}
}
