package http

import (
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/metrics"
	"github.com/rvanwijk/pii-guard/internal/service"
	"github.com/rvanwijk/pii-guard/models"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	build    models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, build models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		build:    build,
		logger:   logger,
	}
}
