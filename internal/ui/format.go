package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/DaveSteven/schedule-tui/internal/event"
)

// Stats holds aggregated statistics for a set of events.
type Stats struct {
	BusyMinutes  int
	TimedEvents  int
	AllDayEvents int
	MultiDayBars int
	BusiestDay   string
	busiestByDay map[string]int
}

// TotalEvents returns the number of events counted.
func (s Stats) TotalEvents() int {
	return s.TimedEvents + s.AllDayEvents
}

// PrintOpts configures event printing behavior.
type PrintOpts struct {
	Verbose      bool // Show full titles
	ShowDuration bool // Show duration column
	MaxWidth     int  // Maximum title width (0 = auto)
}

// CalcMaxTitleWidth calculates the title width based on options.
func (o PrintOpts) CalcMaxTitleWidth(defaultWidth int) int {
	if o.MaxWidth > 0 {
		return o.MaxWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	tw := termWidth()
	// Base: "  ◆  HH:MM-HH:MM  " = ~18 chars
	overhead := 18
	if o.ShowDuration {
		overhead += 7
	}
	available := tw - overhead
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintEventRow prints a single event row with consistent formatting.
func PrintEventRow(e *event.Event, opts PrintOpts, maxTitleWidth int) {
	title := truncate.StringWithTail(e.Title, uint(maxTitleWidth), "…")

	if e.AllDay {
		marker := formatAllDay("◆")
		span := "all day"
		if e.IsMultiDay() {
			span = fmt.Sprintf("%s → %s",
				e.Start.Format("Jan 2"), e.EffectiveEnd().Format("Jan 2"))
		}
		fmt.Printf("  %s  %-11s  %s\n", marker, span, title)
		return
	}

	timeRange := formatTime(e.TimeRange())
	if opts.ShowDuration {
		dur := formatMuted(FormatDuration(EventDurationMinutes(e)))
		fmt.Printf("  ●  %s  %-*s  %s\n", timeRange, maxTitleWidth, title, dur)
	} else {
		fmt.Printf("  ●  %s  %s\n", timeRange, title)
	}
}

// AccumulateStats updates stats based on an event.
func AccumulateStats(stats *Stats, e *event.Event) {
	if stats.busiestByDay == nil {
		stats.busiestByDay = make(map[string]int)
	}

	if e.AllDay {
		stats.AllDayEvents++
		if e.IsMultiDay() {
			stats.MultiDayBars++
		}
		return
	}

	stats.TimedEvents++
	minutes := EventDurationMinutes(e)
	stats.BusyMinutes += minutes

	day := e.Start.Format("Mon Jan 2")
	stats.busiestByDay[day] += minutes
	if stats.busiestByDay[day] >= stats.busiestByDay[stats.BusiestDay] {
		stats.BusiestDay = day
	}
}

// PrintStats prints the stats summary line.
func PrintStats(stats Stats) {
	busy := formatStats(fmt.Sprintf("Busy: %s", FormatDuration(stats.BusyMinutes)))
	fmt.Printf("%s | %d timed | %d all-day\n", busy, stats.TimedEvents, stats.AllDayEvents)

	if stats.BusiestDay != "" && len(stats.busiestByDay) > 1 {
		fmt.Printf("Busiest day: %s (%s)\n",
			stats.BusiestDay,
			formatStats(FormatDuration(stats.busiestByDay[stats.BusiestDay])))
	}
}

// BusyBar creates an ASCII bar showing how full a day is relative to a
// working-hours budget.
func BusyBar(busyMinutes, budgetMinutes, width int) string {
	if budgetMinutes == 0 {
		return "[" + strings.Repeat("░", width) + "] (free)"
	}

	pct := (busyMinutes * 100) / budgetMinutes
	filled := (busyMinutes * width) / budgetMinutes
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatTime(bar), formatStats(fmt.Sprintf("(%d%% booked)", pct)))
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// EventDurationMinutes calculates the duration of an event in minutes.
func EventDurationMinutes(e *event.Event) int {
	return int(e.EffectiveEnd().Sub(e.Start).Minutes())
}
