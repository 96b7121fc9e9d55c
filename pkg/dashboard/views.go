// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"fmt"

	"github.com/canonical/dashboard-shell/internal/analytics"
	"github.com/canonical/dashboard-shell/internal/authorization"
	"github.com/canonical/dashboard-shell/internal/types"
)

type Widget struct {
	ID    string      `json:"id"`
	Type  string      `json:"type"`
	Title string      `json:"title"`
	Data  interface{} `json:"data,omitempty"`
}

type widgetSpec struct {
	id    string
	typ   string
	title string
	// requires additionally gates the widget on a permission grant,
	// independent of the role that selected the view.
	requires *types.RequiredPermission
	build    func(snap *analytics.Snapshot) interface{}
}

// viewForRole is the single dispatcher over the closed role set. Adding a
// role means handling it here; the default branch only catches records that
// bypassed validation.
func viewForRole(role types.Role) ([]widgetSpec, error) {
	switch role {
	case types.RoleAdmin:
		return []widgetSpec{
			dailyActiveUsersWidget(),
			revenueWidget(),
			engagementWidget(),
			userGrowthWidget(),
			{
				id:       "user-management",
				typ:      "table",
				title:    "User Management",
				requires: &types.RequiredPermission{Resource: authorization.USERS_RESOURCE, Action: authorization.READ_ACTION},
			},
			{
				id:       "tenant-settings",
				typ:      "custom",
				title:    "Tenant Settings",
				requires: &types.RequiredPermission{Resource: authorization.SETTINGS_RESOURCE, Action: authorization.READ_ACTION},
			},
		}, nil
	case types.RoleManager:
		return []widgetSpec{
			dailyActiveUsersWidget(),
			revenueWidget(),
			userGrowthWidget(),
			{
				id:       "team-overview",
				typ:      "table",
				title:    "Team Overview",
				requires: &types.RequiredPermission{Resource: authorization.USERS_RESOURCE, Action: authorization.READ_ACTION},
			},
		}, nil
	case types.RoleViewer:
		return []widgetSpec{
			dailyActiveUsersWidget(),
			engagementWidget(),
		}, nil
	default:
		return nil, fmt.Errorf("unhandled role %q", role)
	}
}

// buildView materialises the role's widgets, dropping the ones the user's
// permission set does not cover.
func buildView(user *types.User, snap *analytics.Snapshot) ([]Widget, error) {
	specs, err := viewForRole(user.Role)
	if err != nil {
		return nil, err
	}

	widgets := make([]Widget, 0, len(specs))
	for _, spec := range specs {
		if spec.requires != nil && !authorization.HasPermission(user, spec.requires.Resource, spec.requires.Action) {
			continue
		}
		w := Widget{ID: spec.id, Type: spec.typ, Title: spec.title}
		if spec.build != nil {
			w.Data = spec.build(snap)
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}

func dailyActiveUsersWidget() widgetSpec {
	return widgetSpec{
		id:    "daily-active-users",
		typ:   "metric",
		title: "Daily Active Users",
		build: func(snap *analytics.Snapshot) interface{} { return snap.DailyActiveUsers },
	}
}

func revenueWidget() widgetSpec {
	return widgetSpec{
		id:    "revenue",
		typ:   "metric",
		title: "Revenue",
		build: func(snap *analytics.Snapshot) interface{} { return snap.Revenue },
	}
}

func engagementWidget() widgetSpec {
	return widgetSpec{
		id:    "engagement",
		typ:   "chart",
		title: "Engagement",
		build: func(snap *analytics.Snapshot) interface{} { return snap.Engagement },
	}
}

func userGrowthWidget() widgetSpec {
	return widgetSpec{
		id:    "user-growth",
		typ:   "chart",
		title: "User Growth",
		build: func(snap *analytics.Snapshot) interface{} { return snap.UserGrowth },
	}
}
