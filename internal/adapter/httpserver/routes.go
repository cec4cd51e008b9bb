package httpserver

import (
	"log/slog"

	"github.com/Cleanestbridge/universityswings/internal/adapter/metrics"
	"github.com/Cleanestbridge/universityswings/internal/platform/correlation"
	"github.com/Cleanestbridge/universityswings/web"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) registerRoutes() {
	s.echo.Use(correlation.Middleware())
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(s.httpMetrics.Middleware())
	s.echo.Use(ErrorHandlingMiddleware(s.httpMetrics.RecordError))
	s.echo.Use(middleware.BodyLimit(maxBodySize))
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         s.hstsMaxAge(),
		ContentSecurityPolicy: "default-src 'self'; " +
			"script-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"frame-ancestors 'none'",
		ReferrerPolicy: "strict-origin-when-cross-origin",
	}))

	s.echo.GET("/", s.handleHome)
	s.echo.StaticFS(web.StaticPrefix, web.StaticFiles())

	s.registerHealthRoutes()
	s.registerAPIRoutes()

	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))
}

// hstsMaxAge is two years in production and off elsewhere. Echo only sends
// the header over TLS.
func (s *Server) hstsMaxAge() int {
	if s.config.IsProduction() {
		return 63072000
	}
	return 0
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}
