package service

import (
	"context"

	"github.com/MKhiriev/go-newsletter/models"
)

// AppInfoService reports metadata about the running server.
type AppInfoService interface {
	// GetAppVersion returns the version string of the running server.
	GetAppVersion(ctx context.Context) string

	// GetVersionInfo returns the version together with build metadata.
	GetVersionInfo(ctx context.Context) models.VersionResponse
}
