package timeline

import (
	"time"

	"github.com/DaveSteven/schedule-tui/internal/dateutil"
)

// DayWindow is one visible calendar date column.
type DayWindow struct {
	Date    time.Time
	IsToday bool
}

// DayOf returns the single-column window for t.
func DayOf(t time.Time) DayWindow {
	day := dateutil.TruncateToDay(t)
	return DayWindow{Date: day, IsToday: dateutil.SameDay(day, time.Now())}
}

// WeekOf returns the seven Sunday-start windows of the week containing t.
func WeekOf(t time.Time) []DayWindow {
	start := dateutil.StartOfWeek(t)
	windows := make([]DayWindow, 7)
	for i := range windows {
		day := start.AddDate(0, 0, i)
		windows[i] = DayWindow{Date: day, IsToday: dateutil.SameDay(day, time.Now())}
	}
	return windows
}
