package http

import (
	"time"

	"github.com/MKhiriev/go-empanadas/internal/config"
	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/service"
	"github.com/MKhiriev/go-empanadas/internal/utils"
)

type Handler struct {
	services *service.Services

	traceIDGenerator *utils.UUIDGenerator
	requestTimeout   time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		traceIDGenerator: utils.NewUUIDGenerator(),
		requestTimeout:   cfg.RequestTimeout,
		logger:           logger,
	}
}
