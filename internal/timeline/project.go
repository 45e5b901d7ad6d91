package timeline

import (
	"time"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
	"github.com/DaveSteven/schedule-tui/internal/event"
)

// PositionedEvent is a timed event projected onto a single day column.
// StartMinute and DurationMinute are clipped to the day's [0, 1440)
// range; Overlap is attached by ResolveOverlaps.
type PositionedEvent struct {
	ID             string
	Title          string
	StartMinute    int
	DurationMinute int
	Color          string
	Date           time.Time
	Overlap        *OverlapStyle
}

// EndMinute returns the block's end offset within its day.
func (p PositionedEvent) EndMinute() int {
	return p.StartMinute + p.DurationMinute
}

// Projector clips raw events onto day windows. Warn, when set, is
// called for records skipped during a layout pass; a malformed record
// never aborts the pass for the others.
type Projector struct {
	Warn func(format string, args ...any)
}

func (p *Projector) warnf(format string, args ...any) {
	if p.Warn != nil {
		p.Warn(format, args...)
	}
}

// IsAllDay classifies an event for lane placement. The explicit flag
// wins; a start time of exactly midnight is a fallback for legacy
// records that never set the flag.
func IsAllDay(e *event.Event) bool {
	if e.AllDay {
		return true
	}
	return e.Start.Hour() == 0 && e.Start.Minute() == 0
}

// Project returns one PositionedEvent per timed event intersecting the
// window's date. Events starting before the window's day are clipped
// to minute 0; events ending after it are clipped to 23:59. Durations
// never drop below MinDuration.
func (p *Projector) Project(events []*event.Event, window DayWindow) []PositionedEvent {
	var out []PositionedEvent
	for _, e := range events {
		if e.Start.IsZero() {
			p.warnf("skipping event %q: no start time", e.ID)
			continue
		}
		if IsAllDay(e) {
			continue
		}

		end := e.EffectiveEnd()
		if !dateutil.InRange(window.Date, e.Start, end) {
			continue
		}

		startMinute := 0
		if dateutil.SameDay(e.Start, window.Date) {
			startMinute = e.Start.Hour()*60 + e.Start.Minute()
		}
		endMinute := MinutesPerDay - 1
		if dateutil.SameDay(end, window.Date) {
			endMinute = end.Hour()*60 + end.Minute()
		}

		duration := endMinute - startMinute
		if duration < MinDuration {
			duration = MinDuration
		}

		out = append(out, PositionedEvent{
			ID:             e.ID,
			Title:          e.Title,
			StartMinute:    startMinute,
			DurationMinute: duration,
			Color:          e.EffectiveColor(),
			Date:           window.Date,
		})
	}
	return out
}

// ProjectWeek projects events onto every window of a week.
func (p *Projector) ProjectWeek(events []*event.Event, windows []DayWindow) [][]PositionedEvent {
	out := make([][]PositionedEvent, len(windows))
	for i, w := range windows {
		out[i] = p.Project(events, w)
	}
	return out
}
