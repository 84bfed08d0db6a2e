package handler

import (
	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/handler/grpc"
	"github.com/MKhiriev/go-newsletter/internal/handler/http"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/service"
)

// Handlers groups the transport handlers served on the shared listener.
// GRPC is nil when gRPC is disabled in the server config.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg.RequestTimeout, logger),
	}
	if !cfg.GRPCDisabled {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	return handlers, nil
}
