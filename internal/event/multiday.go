package event

import (
	"fmt"
	"time"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
)

// MultiDayInfo describes where a given day falls inside a multi-day event.
type MultiDayInfo struct {
	TotalDays  int
	CurrentDay int // 1-based
}

// MultiDayInfoFor returns span information when e is a multi-day event
// and day is inside its range. Returns ok=false for single-day events
// or days outside the range.
func MultiDayInfoFor(e *Event, day time.Time) (MultiDayInfo, bool) {
	if !e.IsMultiDay() || !e.CoversDay(day) {
		return MultiDayInfo{}, false
	}
	return MultiDayInfo{
		TotalDays:  dateutil.DaysBetween(e.Start, e.EffectiveEnd()) + 1,
		CurrentDay: dateutil.DaysBetween(e.Start, day) + 1,
	}, true
}

// DisplayTitle returns the title to render for e on the given day.
// This is a pass-through; the day-count decoration is available via
// DecoratedTitle and must be opted into explicitly.
func DisplayTitle(e *Event, _ time.Time) string {
	return e.Title
}

// DecoratedTitle returns the title annotated with the event's day count,
// e.g. "Offsite (day 2 of 3)". Single-day events pass through unchanged.
func DecoratedTitle(e *Event, day time.Time) string {
	info, ok := MultiDayInfoFor(e, day)
	if !ok {
		return e.Title
	}
	return fmt.Sprintf("%s (day %d of %d)", e.Title, info.CurrentDay, info.TotalDays)
}
