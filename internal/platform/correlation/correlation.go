// Package correlation carries a per-request id through context.Context and
// stamps it on every log record written with that context.
package correlation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Header is the response header that echoes the request's correlation id.
const Header = "X-Request-Id"

type contextKey struct{}

// maxInboundIDLen bounds ids accepted from clients; longer ones are replaced.
const maxInboundIDLen = 128

// NewID generates a random UUID string.
func NewID() string {
	return uuid.NewString()
}

// Middleware assigns every request a correlation id, echoes it in Header and
// stores it in the request context. A client-supplied id is kept when it is
// short printable ASCII.
func Middleware() echo.MiddlewareFunc {
	requestID := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    NewID,
		TargetHeader: Header,
		RequestIDHandler: func(c echo.Context, id string) {
			c.SetRequest(c.Request().WithContext(WithID(c.Request().Context(), id)))
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := requestID(next)
		return func(c echo.Context) error {
			if id := c.Request().Header.Get(Header); id != "" && !acceptable(id) {
				c.Request().Header.Del(Header)
			}
			return h(c)
		}
	}
}

func acceptable(id string) bool {
	if len(id) > maxInboundIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// WithID returns a new context carrying the given correlation ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// ID extracts the correlation ID from ctx, returning ("", false) if not present.
func ID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

// Handler wraps an existing slog.Handler to automatically inject a
// "correlation_id" attribute when the context carries one.
type Handler struct {
	inner slog.Handler
}

func NewHandler(inner slog.Handler) *Handler {
	return &Handler{inner: inner}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ID(ctx); ok {
		r.AddAttrs(slog.String("correlation_id", id))
	}
	if err := h.inner.Handle(ctx, r); err != nil {
		return fmt.Errorf("correlation handler: %w", err)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}
