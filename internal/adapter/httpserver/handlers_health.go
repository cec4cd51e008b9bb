package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Cleanestbridge/universityswings/internal/platform/version"
	"github.com/labstack/echo/v4"
)

const (
	startupProbeTimeout   = 2 * time.Second
	readinessProbeTimeout = 5 * time.Second
)

// HealthCheck is a named health check function.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

func (s *Server) registerHealthRoutes() {
	s.echo.GET("/health/startup", s.handleStartup)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
}

func (s *Server) handleStartup(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), startupProbeTimeout)
	defer cancel()

	return s.runHealthChecks(ctx, c)
}

func (s *Server) handleLiveness(c echo.Context) error {
	response := map[string]any{
		"status":  "ok",
		"uptime":  s.clock.Since(s.startTime).Seconds(),
		"version": version.Version,
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write liveness response: %w", err)
	}
	return nil
}

func (s *Server) handleReadiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessProbeTimeout)
	defer cancel()

	return s.runHealthChecks(ctx, c)
}

// runHealthChecks runs every check and reports each result alongside the
// schedule size. The first failing check is named in failed_check.
func (s *Server) runHealthChecks(ctx context.Context, c echo.Context) error {
	results := make(map[string]string, len(s.healthChecks))
	var failed string
	for _, hc := range s.healthChecks {
		if err := hc.Check(ctx); err != nil {
			results[hc.Name] = err.Error()
			if failed == "" {
				failed = hc.Name
			}
			continue
		}
		results[hc.Name] = "ok"
	}

	status := http.StatusOK
	response := map[string]any{
		"status": "ready",
		"events": s.app.EventCount(),
		"checks": results,
	}
	if failed != "" {
		status = http.StatusServiceUnavailable
		response["status"] = "unhealthy"
		response["failed_check"] = failed
		response["error"] = results[failed]
	}

	if err := c.JSON(status, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleVersion(c echo.Context) error {
	if err := c.JSON(http.StatusOK, version.Get()); err != nil {
		return fmt.Errorf("failed to write version response: %w", err)
	}
	return nil
}
