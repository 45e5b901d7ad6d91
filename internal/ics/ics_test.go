package ics

import (
	"strings"
	"testing"
	"time"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:meeting-1@example.com
SUMMARY:Team sync
LOCATION:Room 4
DTSTART:20240115T093000Z
DTEND:20240115T100000Z
END:VEVENT
BEGIN:VEVENT
UID:holiday-1@example.com
SUMMARY:Company holiday
DTSTART;VALUE=DATE:20240116
DTEND;VALUE=DATE:20240117
END:VEVENT
BEGIN:VEVENT
UID:broken@example.com
SUMMARY:No start
END:VEVENT
END:VCALENDAR
`

func TestParse(t *testing.T) {
	var warnings int
	p := &Parser{Warn: func(string, ...any) { warnings++ }}

	events, err := p.Parse(strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if warnings != 1 {
		t.Errorf("warnings = %d, want 1 for the start-less entry", warnings)
	}

	sync := events[0]
	if sync.Title != "Team sync" {
		t.Errorf("title = %q", sync.Title)
	}
	if sync.AllDay {
		t.Error("timed event marked all-day")
	}
	wantStart := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	if !sync.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", sync.Start, wantStart)
	}
	if sync.End.Sub(sync.Start) != 30*time.Minute {
		t.Errorf("duration = %v, want 30m", sync.End.Sub(sync.Start))
	}
	if sync.Payload["uid"] != "meeting-1@example.com" || sync.Payload["location"] != "Room 4" {
		t.Errorf("payload = %v", sync.Payload)
	}

	holiday := events[1]
	if !holiday.AllDay {
		t.Error("VALUE=DATE event should be all-day")
	}
	if holiday.ID == "" {
		t.Error("imported events need generated IDs")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	p := &Parser{}
	if _, err := p.Parse(strings.NewReader("not a calendar")); err == nil {
		t.Error("expected an error for malformed input")
	}
}
