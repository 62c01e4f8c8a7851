package http

import (
	"time"

	"github.com/MKhiriev/inventory-keeper/internal/config"
	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/service"
	"github.com/MKhiriev/inventory-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hideInternalErrors replaces 500 details with the status text.
	hideInternalErrors bool
	requestTimeout     time.Duration

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		hideInternalErrors: cfg.App.IsProduction(),
		requestTimeout:     cfg.Server.RequestTimeout,
		traceIDs:           utils.NewUUIDGenerator(),
		logger:             logger,
	}
}
