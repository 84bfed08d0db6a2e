package http

import (
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/service"
)

type Handler struct {
	services       *service.Services
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A positive requestTimeout cancels
// request contexts that run longer than it.
func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
