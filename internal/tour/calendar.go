package tour

import (
	"strings"
	"time"

	"github.com/Cleanestbridge/universityswings/internal/domain"
)

const (
	calendarProdID      = "-//University Swings//EN"
	calendarDescription = "Mobile golf simulator campus tour"
	calendarStamp       = "20060102T150405Z"

	// Stops have no published start time; 14:00 UTC is the placeholder.
	stopStartHour = 14
	stopDuration  = 2 * time.Hour
)

// Summary is the calendar title for an event.
func Summary(ev domain.Event) string {
	return "University Swings at " + ev.University
}

// Calendar renders ev as a single-event iCalendar document.
func Calendar(ev domain.Event, uid string, now time.Time) []byte {
	start := ev.Day().Add(stopStartHour * time.Hour)
	end := start.Add(stopDuration)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + calendarProdID,
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + now.UTC().Format(calendarStamp),
		"DTSTART:" + start.UTC().Format(calendarStamp),
		"DTEND:" + end.UTC().Format(calendarStamp),
		"SUMMARY:" + escapeText(Summary(ev)),
		"LOCATION:" + escapeText(ev.City+", "+ev.State),
		"DESCRIPTION:" + calendarDescription,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return []byte(strings.Join(lines, "\r\n") + "\r\n")
}

var textEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

// escapeText applies RFC 5545 TEXT escaping.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// Filename is a download name for the event's calendar entry.
func Filename(ev domain.Event) string {
	return strings.Join(strings.Fields(Summary(ev)), "_") + ".ics"
}
