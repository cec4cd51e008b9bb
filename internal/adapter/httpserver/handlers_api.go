package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Cleanestbridge/universityswings/internal/domain"
	apperrors "github.com/Cleanestbridge/universityswings/internal/platform/errors"
	"github.com/labstack/echo/v4"
)

const calendarContentType = "text/calendar; charset=utf-8"

func (s *Server) registerAPIRoutes() {
	s.echo.GET("/api/events", s.handleListEvents)
	s.echo.GET("/api/events/:id", s.handleGetEvent)
	s.echo.GET("/api/events/:id/calendar.ics", s.handleEventCalendar)
	s.echo.POST("/api/request-stop", s.handleRequestStop)
}

func (s *Server) handleListEvents(c echo.Context) error {
	filter, err := parseEventFilter(c)
	if err != nil {
		return err
	}

	events := s.app.ListEvents(c.Request().Context(), filter)
	if err := c.JSON(http.StatusOK, events); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func parseEventFilter(c echo.Context) (domain.EventFilter, error) {
	filter := domain.EventFilter{
		Query: strings.TrimSpace(c.QueryParam("q")),
		State: strings.ToUpper(strings.TrimSpace(c.QueryParam("state"))),
	}

	if raw := strings.TrimSpace(c.QueryParam("month")); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return domain.EventFilter{}, apperrors.ValidationError("month must be a number between 1 and 12").WithField("month", raw)
		}
		filter.Month = month
	}
	return filter, nil
}

func (s *Server) handleGetEvent(c echo.Context) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}

	ev, err := s.app.GetEvent(c.Request().Context(), id)
	if errors.Is(err, domain.ErrEventNotFound) {
		return apperrors.NotFoundError("event not found").WithField("event_id", id)
	}
	if err != nil {
		return apperrors.InternalError("failed to load event", err).WithField("event_id", id)
	}

	if err := c.JSON(http.StatusOK, ev); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleEventCalendar(c echo.Context) error {
	id, err := parseEventID(c)
	if err != nil {
		return err
	}

	entry, err := s.app.EventCalendar(c.Request().Context(), id)
	if errors.Is(err, domain.ErrEventNotFound) {
		return apperrors.NotFoundError("event not found").WithField("event_id", id)
	}
	if err != nil {
		return apperrors.InternalError("failed to build calendar entry", err).WithField("event_id", id)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", entry.Filename))
	if err := c.Blob(http.StatusOK, calendarContentType, entry.Body); err != nil {
		return fmt.Errorf("failed to send calendar response: %w", err)
	}
	return nil
}

func parseEventID(c echo.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperrors.ValidationError("invalid event id").WithField("id", raw)
	}
	return id, nil
}

func (s *Server) handleRequestStop(c echo.Context) error {
	req, err := decodeStopRequest(c)
	if err != nil {
		return err
	}

	err = s.app.RequestStop(c.Request().Context(), req)
	var missingErr *domain.MissingFieldsError
	if errors.As(err, &missingErr) {
		return apperrors.ValidationError(missingErr.Error()).WithField("missing", missingErr.Fields)
	}
	if err != nil {
		return apperrors.InternalError("failed to process stop request", err)
	}

	if err := c.JSON(http.StatusOK, map[string]bool{"ok": true}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodeStopRequest reads the body as a single JSON object regardless of
// content type. Anything else, including an object followed by more data,
// decodes to an empty request so it fails the required-field check instead of
// erroring. Only an oversized body is reported as an error.
func decodeStopRequest(c echo.Context) (domain.StopRequest, error) {
	var req domain.StopRequest
	dec := json.NewDecoder(c.Request().Body)
	err := dec.Decode(&req)
	if err == nil {
		err = expectEOF(dec)
	}
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return nil, httpErr
		}
		slog.DebugContext(c.Request().Context(), "Stop request body is not a JSON object", "error", err)
		return domain.StopRequest{}, nil
	}
	if req == nil {
		req = domain.StopRequest{}
	}
	return req, nil
}

func expectEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	err := dec.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return errTrailingData
}
