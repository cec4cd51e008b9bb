package httpserver

import (
	"context"
	"testing"
	"time"

	"github.com/Cleanestbridge/universityswings/internal/app"
	"github.com/Cleanestbridge/universityswings/internal/domain"
	"github.com/Cleanestbridge/universityswings/internal/platform/config"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

var testEvents = []domain.Event{
	{ID: 1, Date: "2025-09-06", University: "Indiana University", City: "Bloomington", State: "IN", Type: "Tailgate Stop", Status: domain.StatusPast},
	{ID: 5, Date: "2025-11-15", University: "Purdue University", City: "West Lafayette", State: "IN", Type: "Club Night", Status: domain.StatusOpen},
	{ID: 6, Date: "2025-11-22", University: "Penn State University", City: "State College", State: "PA", Type: "Tailgate Stop", Status: domain.StatusHold},
}

type mockAppService struct {
	eventCountFn    func() int
	listEventsFn    func(ctx context.Context, filter domain.EventFilter) []domain.Event
	getEventFn      func(ctx context.Context, id int) (domain.Event, error)
	eventCalendarFn func(ctx context.Context, id int) (*app.CalendarEntry, error)
	requestStopFn   func(ctx context.Context, req domain.StopRequest) error
}

func (m *mockAppService) EventCount() int {
	if m.eventCountFn != nil {
		return m.eventCountFn()
	}
	return len(testEvents)
}

func (m *mockAppService) ListEvents(ctx context.Context, filter domain.EventFilter) []domain.Event {
	if m.listEventsFn != nil {
		return m.listEventsFn(ctx, filter)
	}
	return testEvents
}

func (m *mockAppService) GetEvent(ctx context.Context, id int) (domain.Event, error) {
	if m.getEventFn != nil {
		return m.getEventFn(ctx, id)
	}
	return domain.Event{}, domain.ErrEventNotFound
}

func (m *mockAppService) EventCalendar(ctx context.Context, id int) (*app.CalendarEntry, error) {
	if m.eventCalendarFn != nil {
		return m.eventCalendarFn(ctx, id)
	}
	return nil, domain.ErrEventNotFound
}

func (m *mockAppService) RequestStop(ctx context.Context, req domain.StopRequest) error {
	if m.requestStopFn != nil {
		return m.requestStopFn(ctx, req)
	}
	return nil
}

// --- Test helpers ---

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:          "development",
		Host:            "127.0.0.1",
		Port:            5173,
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	srv, err := NewServer(testConfig(), app, clockwork.NewFakeClockAt(testNow), prometheus.NewRegistry(), nil)
	require.NoError(t, err)

	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

func withClock(clock clockwork.Clock) func(*Server) {
	return func(s *Server) {
		s.clock = clock
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware(nil)(handler)(c)
}
