package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
)

// writeGrace is added to the request timeout for WriteTimeout so that the
// 504 written by the router's Timeout middleware still reaches the client.
const writeGrace = time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, listener net.Listener, requestTimeout time.Duration, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: requestTimeout,
			ReadTimeout:       requestTimeout,
			WriteTimeout:      writeTimeout(requestTimeout),
		},
		listener: listener,
		logger:   logger,
	}
}

func (h *httpServer) Serve() error {
	h.logger.Info().Msg("launching HTTP server")
	return h.server.Serve(h.listener)
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server shutdown")
	return h.server.Shutdown(ctx)
}

func (h *httpServer) Close() error {
	return h.server.Close()
}

func writeTimeout(requestTimeout time.Duration) time.Duration {
	if requestTimeout <= 0 {
		return 0
	}
	return requestTimeout + writeGrace
}
