package server

import (
	"context"
	"net"

	myGRPC "github.com/MKhiriev/go-newsletter/internal/handler/grpc"
	"github.com/MKhiriev/go-newsletter/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, listener net.Listener, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler:  handler,
		server:   server,
		listener: listener,
		logger:   logger,
	}
}

func (g *grpcServer) Serve() error {
	g.logger.Info().Msg("launching gRPC server")
	return g.server.Serve(g.listener)
}

// Shutdown reports NOT_SERVING to health checkers and then drains open
// calls. When ctx expires first the remaining calls are cancelled.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return ctx.Err()
	}
}

func (g *grpcServer) Close() error {
	g.handler.Shutdown()
	g.server.Stop()
	return nil
}
