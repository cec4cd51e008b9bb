package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.Valid(), "status %q", s)
	}
	assert.True(t, StatusSold.Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("OPEN").Valid())
}

func TestEventDay(t *testing.T) {
	ev := Event{Date: "2025-11-08"}
	assert.Equal(t, time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC), ev.Day())

	assert.True(t, Event{Date: "garbage"}.Day().IsZero())
}

func TestEventFilterMatches(t *testing.T) {
	ev := Event{ID: 4, Date: "2025-11-08", University: "University of Michigan", City: "Ann Arbor", State: "MI"}

	tests := []struct {
		name   string
		filter EventFilter
		want   bool
	}{
		{"zero filter", EventFilter{}, true},
		{"query on university", EventFilter{Query: "michigan"}, true},
		{"query on city", EventFilter{Query: "ARBOR"}, true},
		{"query spanning both", EventFilter{Query: "michigan ann"}, true},
		{"query miss", EventFilter{Query: "purdue"}, false},
		{"state hit", EventFilter{State: "MI"}, true},
		{"state miss", EventFilter{State: "OH"}, false},
		{"month hit", EventFilter{Month: 11}, true},
		{"month miss", EventFilter{Month: 10}, false},
		{"all criteria", EventFilter{Query: "michigan", State: "MI", Month: 11}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(ev))
		})
	}
}

func TestMissingFieldsError(t *testing.T) {
	err := &MissingFieldsError{Fields: []string{FieldEmail, FieldUniversity}}
	assert.Equal(t, "Missing: email, university", err.Error())
}
