// Package event defines the core domain types for schedule-tui.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrMissingStart   = errors.New("event start time is required")
	ErrEndBeforeStart = errors.New("end time must be on or after start time")
)

// Domain errors.
var (
	ErrEventNotFound = errors.New("event not found")
)

// DefaultColor is applied to events that don't carry their own color.
const DefaultColor = "#3b82f6"

// DefaultDuration is assumed when an event has no end time.
const DefaultDuration = time.Hour

// Event is a calendar entry. Start is required; a zero End means the
// event runs for DefaultDuration. Payload carries source-specific
// metadata the layout engine never inspects.
type Event struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Color     string
	AllDay    bool
	Payload   map[string]string
	CreatedAt time.Time
}

// New creates a new Event with validation. A zero end time is allowed
// and treated as start + 1 hour by consumers.
func New(title string, start, end time.Time, allDay bool) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if start.IsZero() {
		return nil, ErrMissingStart
	}
	if !end.IsZero() && end.Before(start) {
		return nil, ErrEndBeforeStart
	}

	return &Event{
		ID:        uuid.NewString(),
		Title:     title,
		Start:     start,
		End:       end,
		Color:     DefaultColor,
		AllDay:    allDay,
		CreatedAt: time.Now(),
	}, nil
}

// EffectiveEnd returns the event's end time, substituting the default
// duration when no end is set.
func (e *Event) EffectiveEnd() time.Time {
	if e.End.IsZero() {
		return e.Start.Add(DefaultDuration)
	}
	return e.End
}

// EffectiveColor returns the event's color or the default.
func (e *Event) EffectiveColor() string {
	if e.Color == "" {
		return DefaultColor
	}
	return e.Color
}

// IsMultiDay reports whether the event's start and end fall on
// different calendar days.
func (e *Event) IsMultiDay() bool {
	return !dateutil.SameDay(e.Start, e.EffectiveEnd())
}

// CoversDay reports whether the event's inclusive day range contains day.
func (e *Event) CoversDay(day time.Time) bool {
	return dateutil.InRange(day, e.Start, e.EffectiveEnd())
}

// TimeRange formats the event's time span for display.
func (e *Event) TimeRange() string {
	if e.AllDay {
		return "all day"
	}
	return fmt.Sprintf("%s – %s", e.Start.Format("15:04"), e.EffectiveEnd().Format("15:04"))
}
