package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cleanestbridge/universityswings/internal/adapter/httpserver"
	"github.com/Cleanestbridge/universityswings/internal/adapter/metrics"
	"github.com/Cleanestbridge/universityswings/internal/app"
	"github.com/Cleanestbridge/universityswings/internal/platform/config"
	"github.com/Cleanestbridge/universityswings/internal/platform/logging"
	"github.com/Cleanestbridge/universityswings/internal/platform/version"
	"github.com/Cleanestbridge/universityswings/internal/tour"
	"github.com/jonboulle/clockwork"
)

func runGracefulShutdown(srv *httpserver.Server, cfg *config.Config) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", logging.Err(err))
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDirectory() *tour.Directory {
	directory, err := tour.Default()
	if err != nil {
		slog.Error("Failed to load event directory", logging.Err(err))
		os.Exit(1)
	}
	return directory
}

func directoryHealthCheck(svc *app.Service) httpserver.HealthCheck {
	return httpserver.HealthCheck{
		Name: "event_directory",
		Check: func(context.Context) error {
			if svc.EventCount() == 0 {
				return errors.New("no events loaded")
			}
			return nil
		},
	}
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.EffectiveLogLevel(), cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "version", version.Get().String(), "debug", cfg.Debug)

	directory := setupDirectory()

	registry := metrics.NewRegistry()
	tourMetrics := metrics.NewTourMetrics(registry)
	tourMetrics.SetEvents(directory.Len())

	appSvc := app.NewService(directory, clock, tourMetrics)

	srv, err := httpserver.NewServer(cfg, appSvc, clock, registry, []httpserver.HealthCheck{directoryHealthCheck(appSvc)})
	if err != nil {
		slog.Error("Failed to create server", logging.Err(err))
		os.Exit(1)
	}

	done := runGracefulShutdown(srv, cfg)

	slog.Info("Server starting", "addr", cfg.Addr(), "events", directory.Len())
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", logging.Err(err))
		os.Exit(1)
	}

	<-done
}
