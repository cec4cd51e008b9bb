package tour

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendar(t *testing.T) {
	ev := validEvent(5)
	now := time.Date(2025, 10, 1, 9, 30, 0, 0, time.UTC)

	body := string(Calendar(ev, "uid-123", now))

	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(body, "END:VCALENDAR\r\n"))
	assert.Contains(t, body, "PRODID:-//University Swings//EN\r\n")
	assert.Contains(t, body, "UID:uid-123\r\n")
	assert.Contains(t, body, "DTSTAMP:20251001T093000Z\r\n")
	assert.Contains(t, body, "DTSTART:20251115T140000Z\r\n")
	assert.Contains(t, body, "DTEND:20251115T160000Z\r\n")
	assert.Contains(t, body, "SUMMARY:University Swings at Purdue University\r\n")
	assert.Contains(t, body, `LOCATION:West Lafayette\, IN`)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "University_Swings_at_Purdue_University.ics", Filename(validEvent(5)))
}
