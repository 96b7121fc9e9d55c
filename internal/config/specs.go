// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// CatalogFile optionally overrides the embedded tenant catalog seed.
	CatalogFile string `envconfig:"catalog_file"`

	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"24h"`

	// DefaultTenant is where requests to the bare root are pointed.
	DefaultTenant string `envconfig:"default_tenant" default:"acme"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
