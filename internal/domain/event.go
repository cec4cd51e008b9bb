package domain

import (
	"slices"
	"strings"
	"time"
)

// DateLayout is the fixed-width calendar date format used by event records.
const DateLayout = "2006-01-02"

// Status is the lifecycle label of a tour event.
type Status string

const (
	StatusPast Status = "past"
	StatusOpen Status = "open"
	StatusHold Status = "hold"
	// StatusSold is valid even though the default dataset never uses it.
	StatusSold Status = "sold"
)

// Statuses lists every allowed status value.
func Statuses() []Status {
	return []Status{StatusPast, StatusOpen, StatusHold, StatusSold}
}

// Valid reports whether s is one of the allowed status values.
func (s Status) Valid() bool {
	return slices.Contains(Statuses(), s)
}

// Event is one stop on the tour.
type Event struct {
	ID         int    `json:"id" yaml:"id" validate:"required,gt=0"`
	Date       string `json:"date" yaml:"date" validate:"required,len=10,datetime=2006-01-02"`
	University string `json:"university" yaml:"university" validate:"required,notblank"`
	City       string `json:"city" yaml:"city" validate:"required,notblank"`
	State      string `json:"state" yaml:"state" validate:"required,len=2,alpha,uppercase"`
	Type       string `json:"type" yaml:"type" validate:"required,notblank"`
	Status     Status `json:"status" yaml:"status" validate:"required,status"`
}

// Day returns the event date as midnight UTC. Events in a constructed
// directory always carry a parseable date.
func (e Event) Day() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EventFilter narrows the event listing. The zero value matches everything.
type EventFilter struct {
	Query string
	State string
	Month int
}

// IsZero reports whether the filter has no criteria set.
func (f EventFilter) IsZero() bool {
	return f.Query == "" && f.State == "" && f.Month == 0
}

// Matches reports whether e satisfies every criterion set on the filter.
func (f EventFilter) Matches(e Event) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystack := strings.ToLower(e.University + " " + e.City)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	if f.State != "" && e.State != f.State {
		return false
	}
	if f.Month != 0 && int(e.Day().Month()) != f.Month {
		return false
	}
	return true
}
