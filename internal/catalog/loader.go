// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"fmt"
	"os"

	"github.com/canonical/dashboard-shell/internal/types"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Tenants []*types.Tenant `yaml:"tenants"`
}

// LoadFile reads a tenant catalog from a YAML file. Validation happens in
// NewCatalog, not here.
func LoadFile(path string) ([]*types.Tenant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return f.Tenants, nil
}
