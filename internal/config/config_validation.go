package config

import (
	"time"

	"github.com/MKhiriev/inventory-keeper/models"
)

const (
	defaultHTTPAddress        = "localhost:8080"
	defaultRequestTimeout     = 30 * time.Second
	defaultShutdownTimeout    = 10 * time.Second
	defaultTokenDuration      = 24 * time.Hour
	defaultTokenIssuer        = "inventory-keeper"
	defaultPasswordHashCost   = 10
	defaultMaxOpenConns       = 10
	defaultCRMLoginURL        = "https://login.salesforce.com"
	defaultCRMAPIVersion      = "v60.0"
	defaultCRMRequestTimeout  = 15 * time.Second
	defaultRegistrationStatus = models.StatusUnverified
	defaultVersion            = "dev"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvironmentProduction
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.RegistrationStatus == "" {
		cfg.App.RegistrationStatus = string(defaultRegistrationStatus)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}

	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Adapter.CRM.LoginURL == "" {
		cfg.Adapter.CRM.LoginURL = defaultCRMLoginURL
	}
	if cfg.Adapter.CRM.APIVersion == "" {
		cfg.Adapter.CRM.APIVersion = defaultCRMAPIVersion
	}
	if cfg.Adapter.CRM.RequestTimeout == 0 {
		cfg.Adapter.CRM.RequestTimeout = defaultCRMRequestTimeout
	}
}

func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.App.Environment {
	case EnvironmentProduction, EnvironmentDevelopment:
	default:
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	if !models.Status(cfg.App.RegistrationStatus).IsValid() ||
		models.Status(cfg.App.RegistrationStatus) == models.StatusBlocked {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.CRM.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
