package service

import (
	"context"

	"github.com/MKhiriev/inventory-keeper/internal/config"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	appVersion  string
	buildDate   string
	buildCommit string

	logger *logger.Logger
}

// NewAppInfoService reports the linker-injected build version, falling back to
// the configured one.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := build.BuildVersion()
	if version == "" || version == notAvailable {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  version,
		buildDate:   orNotAvailable(build.BuildDate()),
		buildCommit: orNotAvailable(build.BuildCommit()),
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version:     s.appVersion,
		BuildDate:   s.buildDate,
		BuildCommit: s.buildCommit,
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
