package tour

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"github.com/Cleanestbridge/universityswings/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"gopkg.in/yaml.v3"
)

//go:embed events.yaml
var defaultEvents []byte

// Directory is an immutable ordered set of events. Safe for concurrent use.
type Directory struct {
	events []domain.Event
	byID   map[int]int
}

// Default builds the directory from the embedded tour schedule.
func Default() (*Directory, error) {
	return Parse(defaultEvents)
}

// Parse decodes a YAML list of events and builds a directory from it.
func Parse(data []byte) (*Directory, error) {
	var events []domain.Event
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return New(events)
}

// New validates events and returns a directory holding a private copy.
func New(events []domain.Event) (*Directory, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no events", domain.ErrInvalidEvents)
	}

	validate, err := newValidator()
	if err != nil {
		return nil, err
	}

	d := &Directory{
		events: slices.Clone(events),
		byID:   make(map[int]int, len(events)),
	}
	for i, ev := range d.events {
		if err := validate.Struct(ev); err != nil {
			return nil, fmt.Errorf("%w: event %d: %w", domain.ErrInvalidEvents, ev.ID, describe(err))
		}
		if _, dup := d.byID[ev.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", domain.ErrInvalidEvents, ev.ID)
		}
		d.byID[ev.ID] = i
	}
	return d, nil
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("failed to register validation: %w", err)
	}
	if err := v.RegisterValidation("status", validStatus); err != nil {
		return nil, fmt.Errorf("failed to register validation: %w", err)
	}
	return v, nil
}

func validStatus(fl validator.FieldLevel) bool {
	return domain.Status(fl.Field().String()).Valid()
}

// describe flattens validator output into "field failed tag" pairs.
func describe(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "status" {
			msgs = append(msgs, fmt.Errorf("%s %q is not one of %v", fe.Field(), fe.Value(), domain.Statuses()))
			continue
		}
		msgs = append(msgs, fmt.Errorf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return errors.Join(msgs...)
}

// Len returns the number of events.
func (d *Directory) Len() int {
	return len(d.events)
}

// All returns every event in directory order.
func (d *Directory) All() []domain.Event {
	return slices.Clone(d.events)
}

// Filter returns the events matching f, in directory order.
func (d *Directory) Filter(f domain.EventFilter) []domain.Event {
	if f.IsZero() {
		return d.All()
	}
	out := make([]domain.Event, 0, len(d.events))
	for _, ev := range d.events {
		if f.Matches(ev) {
			out = append(out, ev)
		}
	}
	return out
}

// Get looks an event up by id.
func (d *Directory) Get(id int) (domain.Event, error) {
	i, ok := d.byID[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return d.events[i], nil
}
