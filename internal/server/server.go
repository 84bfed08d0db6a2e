package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-newsletter/internal/bootstrap"
	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/handler"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"

	"google.golang.org/grpc"
)

// Constructor activates the newsletter server on a bound listener.
type Constructor struct {
	handlers *handler.Handlers
	cfg      config.Server
	logger   *logger.Logger
}

var _ bootstrap.ServerConstructor = (*Constructor)(nil)

func New(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) *Constructor {
	logger.Info().Msg("creating new server...")
	return &Constructor{
		handlers: handlers,
		cfg:      cfg,
		logger:   logger,
	}
}

// Activate takes ownership of ln and builds the servers on top of it. It
// does not start accepting connections; that happens in Serve.
func (c *Constructor) Activate(ln net.Listener) (bootstrap.Task, error) {
	if ln == nil {
		return nil, errNilListener
	}
	if c.handlers == nil || c.handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}

	mux := cmux.New(ln)
	s := &server{
		root:   ln,
		mux:    mux,
		logger: c.logger,
	}

	// gRPC clients wait for the server SETTINGS frame before sending headers.
	if c.handlers.GRPC != nil && !c.cfg.GRPCDisabled {
		grpcLn := mux.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
		s.servers = append(s.servers, newGRPCServer(c.handlers.GRPC, grpcLn, c.logger))
	}
	httpLn := mux.Match(cmux.Any())
	s.servers = append(s.servers, newHTTPServer(c.handlers.HTTP.Init(), httpLn, c.cfg.RequestTimeout, c.logger))

	c.logger.Info().
		Str("address", ln.Addr().String()).
		Bool("grpc", len(s.servers) > 1).
		Msg("server activated")

	return s, nil
}

// server is the bootstrap.Task serving every enabled protocol on one
// listener.
type server struct {
	root    net.Listener
	mux     cmux.CMux
	servers []Server

	stopping atomic.Bool
	stopOnce sync.Once

	logger *logger.Logger
}

// Serve runs the multiplexer and every protocol server. The first abnormal
// stop closes the rest and is returned as *bootstrap.ServeError.
func (s *server) Serve() error {
	var g errgroup.Group

	for _, srv := range s.servers {
		g.Go(func() error {
			err := srv.Serve()
			// closed mux listeners are reported by the mux itself
			if isClosedErr(err) {
				return nil
			}
			return s.check(err)
		})
	}
	g.Go(func() error {
		return s.check(s.mux.Serve())
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

// Shutdown drains every protocol server and closes the listener.
func (s *server) Shutdown(ctx context.Context) error {
	s.stopping.Store(true)

	var errs []error
	for _, srv := range s.servers {
		// servers share the root listener, so all but the first find it closed
		if err := srv.Shutdown(ctx); err != nil && !isClosedErr(err) {
			errs = append(errs, err)
		}
	}
	s.closeMux()

	return errors.Join(errs...)
}

// check maps the errors servers return on a requested stop to nil. Any
// other error aborts the remaining servers.
func (s *server) check(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	if s.stopping.Load() && isClosedErr(err) {
		return nil
	}

	s.abort()
	return &bootstrap.ServeError{Err: fmt.Errorf("serving %s: %w", s.root.Addr(), err)}
}

func (s *server) abort() {
	if s.stopping.Swap(true) {
		return
	}
	for _, srv := range s.servers {
		_ = srv.Close()
	}
	s.closeMux()
}

func (s *server) closeMux() {
	s.stopOnce.Do(func() {
		s.mux.Close()
		_ = s.root.Close()
	})
}

func isClosedErr(err error) bool {
	return errors.Is(err, net.ErrClosed) ||
		errors.Is(err, cmux.ErrListenerClosed) ||
		errors.Is(err, cmux.ErrServerClosed)
}
