// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/canonical/dashboard-shell/internal/catalog"
	"github.com/canonical/dashboard-shell/internal/credentials"
	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/spf13/cobra"
)

// catalogCmd prints the tenants and demo accounts the server would seed.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the seeded tenants and demo accounts",
	Long:  `List the tenants and demo accounts embedded in the binary, or loaded from --catalog-file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCatalog(catalogFileFlag)
	},
}

var catalogFileFlag string

func init() {
	catalogCmd.Flags().StringVar(&catalogFileFlag, "catalog-file", "", "YAML file overriding the embedded tenant catalog")
	rootCmd.AddCommand(catalogCmd)
}

func printCatalog(path string) error {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	tenants := catalog.DefaultTenants()
	if path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		tenants = loaded
	}

	c, err := catalog.NewCatalog(tenants, tracer, monitor, logger)
	if err != nil {
		return err
	}
	store, err := credentials.NewStore(credentials.DefaultCredentials(), tracer, monitor, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, tenant := range c.List(ctx) {
		fmt.Printf("%s (%s)\n", tenant.Name, tenant.Slug)
		for _, user := range store.ListByTenantID(ctx, tenant.ID) {
			fmt.Printf("  %s\t%s\n", user.Email, user.Role)
		}
	}

	return nil
}
