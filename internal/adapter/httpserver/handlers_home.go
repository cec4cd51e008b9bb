package httpserver

import (
	"slices"
	"time"

	"github.com/Cleanestbridge/universityswings/internal/domain"
	"github.com/Cleanestbridge/universityswings/web"
	"github.com/labstack/echo/v4"
)

type monthOption struct {
	Number int
	Name   string
}

func (s *Server) handleHome(c echo.Context) error {
	events := s.app.ListEvents(c.Request().Context(), domain.EventFilter{})

	data := map[string]any{
		"Brand":        Brand,
		"StaticPrefix": web.StaticPrefix,
		"Year":         s.clock.Now().Year(),
		"States":       stateOptions(events),
		"Months":       monthOptions(events),
	}
	return s.renderTemplate(c, "index.html", data)
}

// stateOptions lists the distinct states on the schedule, sorted.
func stateOptions(events []domain.Event) []string {
	states := make([]string, 0, len(events))
	for _, ev := range events {
		states = append(states, ev.State)
	}
	slices.Sort(states)
	return slices.Compact(states)
}

// monthOptions lists the distinct calendar months on the schedule in month order.
func monthOptions(events []domain.Event) []monthOption {
	var seen [13]bool
	for _, ev := range events {
		seen[ev.Day().Month()] = true
	}

	var out []monthOption
	for m := time.January; m <= time.December; m++ {
		if seen[m] {
			out = append(out, monthOption{Number: int(m), Name: m.String()})
		}
	}
	return out
}
