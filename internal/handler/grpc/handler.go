package grpc

import (
	"github.com/MKhiriev/go-newsletter/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name the newsletter service reports under in the
// standard gRPC health protocol, next to the overall "" entry.
const ServiceName = "newsletter"

// Handler is the root gRPC transport handler.
//
// It owns the health service and the interceptor chain shared by every
// method the gRPC server exposes.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		logger: logger,
	}
}

// Register attaches the health and reflection services to s and marks the
// server as SERVING.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown switches every health entry to NOT_SERVING. Later status updates
// are ignored, so the server cannot report healthy while it drains.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
