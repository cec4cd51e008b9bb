package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/Cleanestbridge/universityswings/internal/adapter/metrics"
	"github.com/Cleanestbridge/universityswings/internal/app"
	"github.com/Cleanestbridge/universityswings/internal/domain"
	"github.com/Cleanestbridge/universityswings/internal/platform/config"
	"github.com/Cleanestbridge/universityswings/web"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Brand is the site name rendered on every page.
const Brand = "University Swings"

const maxBodySize = "64K"

type appService interface {
	EventCount() int
	ListEvents(ctx context.Context, filter domain.EventFilter) []domain.Event
	GetEvent(ctx context.Context, id int) (domain.Event, error)
	EventCalendar(ctx context.Context, id int) (*app.CalendarEntry, error)
	RequestStop(ctx context.Context, req domain.StopRequest) error
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app   appService
	clock clockwork.Clock

	templates *template.Template

	registry     *prometheus.Registry
	httpMetrics  *metrics.HTTPMetrics
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app appService, clock clockwork.Clock, registry *prometheus.Registry, healthChecks []HealthCheck) (*Server, error) {
	templates, err := template.ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		clock:        clock,
		templates:    templates,
		registry:     registry,
		httpMetrics:  metrics.NewHTTPMetrics(registry),
		healthChecks: healthChecks,
		startTime:    clock.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	slog.Info("Starting server", "addr", s.config.Addr(), "debug", s.config.Debug)
	if err := s.echo.Start(s.config.Addr()); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// ServeHTTP exposes the router, mainly for tests and embedding.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(c.Request().Context(), "Template execution failed", "path", c.Request().URL.Path, "error", err)
		if err := c.String(http.StatusInternalServerError, "Failed to render page"); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}
	if err := c.HTMLBlob(http.StatusOK, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}
