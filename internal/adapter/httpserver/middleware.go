package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "github.com/Cleanestbridge/universityswings/internal/platform/errors"
	"github.com/labstack/echo/v4"
)

// ErrorHandlingMiddleware converts handler errors into the JSON error
// envelope. *echo.HTTPError values pass through to echo's default handler so
// routing and body-limit statuses are preserved. record may be nil.
func ErrorHandlingMiddleware(record func(errType string)) echo.MiddlewareFunc {
	if record == nil {
		record = func(string) {}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				record(string(WrapHTTPError(httpErr).Type))
				return err
			}

			structuredErr := apperrors.AsStructuredError(err)
			record(string(structuredErr.Type))
			logError(c, structuredErr)

			if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	ctx := c.Request().Context()
	switch err.Type {
	case apperrors.TypeValidation:
		slog.InfoContext(ctx, "Validation error", attrs...)
	case apperrors.TypeNotFound:
		slog.InfoContext(ctx, "Not found", attrs...)
	case apperrors.TypeInternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Internal error", attrs...)
	default:
		slog.ErrorContext(ctx, "Unknown error type", attrs...)
	}
}

// WrapHTTPError maps an echo HTTP error onto the structured error taxonomy.
func WrapHTTPError(httpErr *echo.HTTPError) *apperrors.Error {
	message := "internal server error"
	if msg, ok := httpErr.Message.(string); ok {
		message = msg
	}

	var errType apperrors.ErrorType
	switch httpErr.Code {
	case http.StatusBadRequest:
		errType = apperrors.TypeValidation
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		errType = apperrors.TypeNotFound
	case http.StatusRequestEntityTooLarge:
		errType = apperrors.TypeTooLarge
	default:
		errType = apperrors.TypeInternal
	}

	return &apperrors.Error{
		Type:    errType,
		Message: message,
		Cause:   httpErr.Internal,
		Context: make(map[string]any),
	}
}
