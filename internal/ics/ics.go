// Package ics imports events from iCalendar files.
package ics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/DaveSteven/schedule-tui/internal/event"
)

// Parser converts VEVENT components into domain events. Warn, when
// set, receives a message for every component that had to be skipped;
// one bad VEVENT never aborts the rest of the file.
type Parser struct {
	Warn func(format string, args ...any)
}

func (p *Parser) warnf(format string, args ...any) {
	if p.Warn != nil {
		p.Warn(format, args...)
	}
}

// Parse reads an iCalendar stream and returns its events. Recurrence
// rules are not expanded; only the base occurrence is imported.
func (p *Parser) Parse(r io.Reader) ([]*event.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var events []*event.Event
	for _, ve := range cal.Events() {
		e, err := p.parseVEvent(ve)
		if err != nil {
			p.warnf("skipping calendar entry: %v", err)
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

// ImportFile parses the ICS file at path.
func (p *Parser) ImportFile(path string) ([]*event.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening calendar file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return p.Parse(f)
}

func (p *Parser) parseVEvent(ve *ical.VEvent) (*event.Event, error) {
	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("event has no usable DTSTART: %w", err)
	}

	title := "(untitled)"
	if prop := ve.GetProperty(ical.ComponentPropertySummary); prop != nil && prop.Value != "" {
		title = prop.Value
	}

	e := &event.Event{
		ID:        uuid.NewString(),
		Title:     title,
		Start:     start.In(time.Local),
		Color:     event.DefaultColor,
		AllDay:    isAllDay(ve),
		Payload:   map[string]string{"source": "ics"},
		CreatedAt: time.Now(),
	}

	if end, err := ve.GetEndAt(); err == nil {
		e.End = end.In(time.Local)
	}

	if prop := ve.GetProperty(ical.ComponentPropertyUniqueId); prop != nil && prop.Value != "" {
		e.Payload["uid"] = prop.Value
	}
	if prop := ve.GetProperty(ical.ComponentPropertyLocation); prop != nil && prop.Value != "" {
		e.Payload["location"] = prop.Value
	}

	return e, nil
}

// isAllDay checks the DTSTART value format: VALUE=DATE or a bare
// YYYYMMDD value both mean an all-day event.
func isAllDay(ve *ical.VEvent) bool {
	prop := ve.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil {
		return false
	}
	if params := prop.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(prop.Value, "T")
}
