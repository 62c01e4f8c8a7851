// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Environments recognised by [App.Environment].
const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

// StructuredConfig is the top-level configuration container for the
// inventory-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing, and runtime mode settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener address and timeout budgets.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for outbound integrations.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is either "production" or "development". In production
	// internal error details are never written to responses.
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`

	// PasswordHashCost is the bcrypt cost factor.
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// TokenSignKey is the HMAC secret used to sign bearer tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RegistrationStatus is the status assigned to newly registered users.
	RegistrationStatus string `env:"REGISTRATION_STATUS"`

	// Version is reported by the version endpoint.
	Version string `env:"VERSION"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds database connection settings.
type DB struct {
	// DSN is the PostgreSQL connection string.
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool size.
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds settings of the HTTP server.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request budget propagated through context.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter groups outbound integration settings.
type Adapter struct {
	// CRM holds the Salesforce connector settings.
	CRM CRM `envPrefix:"CRM_"`
}

// CRM holds Salesforce connector settings. The OAuth authorization flow is
// handled elsewhere; only the refresh grant uses the client credentials.
type CRM struct {
	LoginURL       string        `env:"LOGIN_URL"`
	ClientID       string        `env:"CLIENT_ID"`
	ClientSecret   string        `env:"CLIENT_SECRET"`
	APIVersion     string        `env:"API_VERSION"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// IsProduction reports whether internal error details must be hidden.
func (a App) IsProduction() bool {
	return a.Environment != EnvironmentDevelopment
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. Earlier sources take precedence: environment variables,
// then command-line flags, then the JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
