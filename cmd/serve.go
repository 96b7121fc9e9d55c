// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canonical/dashboard-shell/internal/analytics"
	"github.com/canonical/dashboard-shell/internal/catalog"
	"github.com/canonical/dashboard-shell/internal/config"
	"github.com/canonical/dashboard-shell/internal/credentials"
	"github.com/canonical/dashboard-shell/internal/logging"
	"github.com/canonical/dashboard-shell/internal/monitoring/prometheus"
	"github.com/canonical/dashboard-shell/internal/session"
	"github.com/canonical/dashboard-shell/internal/tracing"
	"github.com/canonical/dashboard-shell/pkg/web"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	_ = godotenv.Load()

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("dashboard-shell", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	tenants := catalog.DefaultTenants()
	if specs.CatalogFile != "" {
		loaded, err := catalog.LoadFile(specs.CatalogFile)
		if err != nil {
			return fmt.Errorf("failed to load tenant catalog: %w", err)
		}
		tenants = loaded
	}
	tenantCatalog, err := catalog.NewCatalog(tenants, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to build tenant catalog: %w", err)
	}

	credentialStore, err := credentials.NewStore(credentials.DefaultCredentials(), tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to build credential store: %w", err)
	}

	sessions := session.NewStore(specs.SessionLifetime, tracer, monitor, logger)
	source := analytics.NewSource(time.Now().UnixNano(), time.Minute, tracer, monitor, logger)

	router := web.NewRouter(
		tenantCatalog,
		credentialStore,
		sessions,
		source,
		specs.DefaultTenant,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
