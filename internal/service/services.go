package service

import (
	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/models"
)

type Services struct {
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
