// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Role is the closed set of authorization levels. Roles are totally ordered
// (viewer < manager < admin) for at-least-role checks; ordering lives in the
// authorization package.
type Role string

const (
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

type TenantTheme struct {
	PrimaryColor   string `json:"primary_color" yaml:"primary_color" validate:"required"`
	SecondaryColor string `json:"secondary_color" yaml:"secondary_color" validate:"required"`
	Logo           string `json:"logo,omitempty" yaml:"logo,omitempty"`
	CustomCSS      string `json:"custom_css,omitempty" yaml:"custom_css,omitempty"`
}

type TenantSettings struct {
	AllowedRoles []Role   `json:"allowed_roles" yaml:"allowed_roles" validate:"required,dive,oneof=admin manager viewer"`
	Features     []string `json:"features" yaml:"features"`
	MaxUsers     int      `json:"max_users" yaml:"max_users" validate:"required,gt=0"`
}

// Tenant is an isolated customer context. Slug is the URL-facing key and is
// immutable once assigned.
type Tenant struct {
	ID       string         `json:"id" yaml:"id" validate:"required"`
	Slug     string         `json:"slug" yaml:"slug" validate:"required,lowercase"`
	Name     string         `json:"name" yaml:"name" validate:"required"`
	Theme    TenantTheme    `json:"theme" yaml:"theme"`
	Settings TenantSettings `json:"settings" yaml:"settings"`
}

// Permission grants a set of actions on a resource, independent of role. A
// user may carry several entries for the same resource; the effective grant
// is the union.
type Permission struct {
	Resource string   `json:"resource" yaml:"resource" validate:"required"`
	Actions  []string `json:"actions" yaml:"actions" validate:"required,min=1"`
}

// User belongs to exactly one tenant.
type User struct {
	ID          string       `json:"id" yaml:"id" validate:"required"`
	Email       string       `json:"email" yaml:"email" validate:"required,email"`
	Name        string       `json:"name" yaml:"name" validate:"required"`
	Role        Role         `json:"role" yaml:"role" validate:"required,oneof=admin manager viewer"`
	TenantID    string       `json:"tenant_id" yaml:"tenant_id" validate:"required"`
	Departments []string     `json:"departments,omitempty" yaml:"departments,omitempty"`
	Permissions []Permission `json:"permissions" yaml:"permissions"`
}

// Resolution is the active (tenant, user) pair for a request. User is nil
// when no session is present, which is a valid state.
type Resolution struct {
	Tenant *Tenant `json:"tenant"`
	User   *User   `json:"user,omitempty"`
}

// RequiredPermission names the (resource, action) a route needs.
type RequiredPermission struct {
	Resource string
	Action   string
}
