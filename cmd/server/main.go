package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-newsletter/internal/bootstrap"
	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/handler"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/server"
	"github.com/MKhiriev/go-newsletter/internal/service"
	"github.com/MKhiriev/go-newsletter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)

	err := run(ctx, flag.CommandLine, os.Args[1:], buildInfo)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. It returns nil after a graceful stop
// and the error that ended the bootstrap otherwise.
func run(ctx context.Context, fs *flag.FlagSet, args []string, buildInfo models.AppBuildInfo) error {
	log := logger.NewLogger("newsletter-server")

	cfg, err := config.LoadStructuredConfig(fs, args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(*cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	b := bootstrap.New(server.New(handlers, cfg.Server, log), cfg.Server.ShutdownTimeout, log)

	return b.Start(ctx, cfg.Server.HTTPAddress)
}
