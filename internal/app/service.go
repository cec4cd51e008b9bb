package app

import (
	"context"
	"log/slog"

	"github.com/Cleanestbridge/universityswings/internal/domain"
	"github.com/Cleanestbridge/universityswings/internal/tour"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// StopRecorder observes stop request outcomes.
type StopRecorder interface {
	StopAccepted()
	StopRejected(missing []string)
}

type Service struct {
	directory *tour.Directory
	clock     clockwork.Clock
	recorder  StopRecorder
	newUID    func() string
}

func NewService(directory *tour.Directory, clock clockwork.Clock, recorder StopRecorder) *Service {
	return &Service{
		directory: directory,
		clock:     clock,
		recorder:  recorder,
		newUID:    uuid.NewString,
	}
}

// EventCount reports how many events the directory holds.
func (s *Service) EventCount() int {
	return s.directory.Len()
}

func (s *Service) ListEvents(_ context.Context, filter domain.EventFilter) []domain.Event {
	return s.directory.Filter(filter)
}

func (s *Service) GetEvent(_ context.Context, id int) (domain.Event, error) {
	return s.directory.Get(id)
}

// CalendarEntry is a downloadable iCalendar document for one event.
type CalendarEntry struct {
	Filename string
	Body     []byte
}

func (s *Service) EventCalendar(ctx context.Context, id int) (*CalendarEntry, error) {
	ev, err := s.directory.Get(id)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Calendar entry exported", "event_id", ev.ID)
	return &CalendarEntry{
		Filename: tour.Filename(ev),
		Body:     tour.Calendar(ev, s.newUID(), s.clock.Now()),
	}, nil
}

// RequestStop acknowledges a stop request. It returns a
// *domain.MissingFieldsError naming every required field that is absent or
// blank; nothing is stored.
func (s *Service) RequestStop(ctx context.Context, req domain.StopRequest) error {
	missing := MissingFields(req)
	if len(missing) > 0 {
		s.recorder.StopRejected(missing)
		return &domain.MissingFieldsError{Fields: missing}
	}

	s.recorder.StopAccepted()
	slog.InfoContext(ctx, "Stop request accepted", "fields", len(req))
	return nil
}

// MissingFields returns the required fields req lacks, in reporting order.
func MissingFields(req domain.StopRequest) []string {
	var missing []string
	for _, field := range domain.RequiredStopFields() {
		if isBlank(req[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}
