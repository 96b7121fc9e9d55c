// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"github.com/canonical/dashboard-shell/internal/types"
)

// DefaultCredentials returns the embedded demo credential set.
func DefaultCredentials() []Credential {
	return []Credential{
		{
			Secret: "admin123",
			User: &types.User{
				ID:       "1",
				Email:    "admin@acme.com",
				Name:     "John Admin",
				Role:     types.RoleAdmin,
				TenantID: "acme",
				Permissions: []types.Permission{
					{Resource: "dashboard", Actions: []string{"read", "write", "delete"}},
					{Resource: "users", Actions: []string{"read", "write", "delete"}},
					{Resource: "settings", Actions: []string{"read", "write"}},
				},
			},
		},
		{
			Secret: "manager123",
			User: &types.User{
				ID:          "2",
				Email:       "manager@acme.com",
				Name:        "Jane Manager",
				Role:        types.RoleManager,
				TenantID:    "acme",
				Departments: []string{"sales", "marketing"},
				Permissions: []types.Permission{
					{Resource: "dashboard", Actions: []string{"read", "write"}},
					{Resource: "users", Actions: []string{"read"}},
				},
			},
		},
		{
			Secret: "viewer123",
			User: &types.User{
				ID:       "3",
				Email:    "viewer@acme.com",
				Name:     "Bob Viewer",
				Role:     types.RoleViewer,
				TenantID: "acme",
				Permissions: []types.Permission{
					{Resource: "dashboard", Actions: []string{"read"}},
				},
			},
		},
		{
			Secret: "admin123",
			User: &types.User{
				ID:       "4",
				Email:    "admin@globex.com",
				Name:     "Grace Admin",
				Role:     types.RoleAdmin,
				TenantID: "globex",
				Permissions: []types.Permission{
					{Resource: "dashboard", Actions: []string{"read", "write", "delete"}},
					{Resource: "users", Actions: []string{"read", "write", "delete"}},
					{Resource: "settings", Actions: []string{"read", "write"}},
				},
			},
		},
	}
}
