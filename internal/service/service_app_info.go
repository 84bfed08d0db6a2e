package service

import (
	"context"

	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService creates the service reporting the running build. The
// configured version wins over the one injected at build time. When neither
// is known the version reads as "N/A", same as the other build fields.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" || version == config.DefaultVersion {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		// zero AppBuildInfo, not built with NewAppBuildInfo
		version = config.DefaultVersion
	}

	return &appInfoService{
		appVersion: version,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version:     s.appVersion,
		BuildDate:   s.buildInfo.BuildDate(),
		BuildCommit: s.buildInfo.BuildCommit(),
	}
}
