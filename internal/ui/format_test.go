package ui

import (
	"testing"
	"time"

	"github.com/DaveSteven/schedule-tui/internal/event"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{150, "2h30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestBusyBar(t *testing.T) {
	DisableColor()
	defer EnableColor()

	tests := []struct {
		name   string
		busy   int
		budget int
		want   string
	}{
		{"empty budget", 0, 0, "[░░░░░░░░░░] (free)"},
		{"half booked", 300, 600, "[█████░░░░░] (50% booked)"},
		{"overbooked clamps", 700, 600, "[██████████] (116% booked)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BusyBar(tt.busy, tt.budget, 10); got != tt.want {
				t.Errorf("BusyBar = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccumulateStats(t *testing.T) {
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 3, 3, 9, 0, 0, 0, time.Local)

	events := []*event.Event{
		{ID: "a", Title: "short", Start: day1, End: day1.Add(time.Hour)},
		{ID: "b", Title: "long", Start: day2, End: day2.Add(3 * time.Hour)},
		{ID: "c", Title: "holiday", Start: day1, AllDay: true},
		{ID: "d", Title: "trip", Start: day1, End: day2, AllDay: true},
	}

	var stats Stats
	for _, e := range events {
		AccumulateStats(&stats, e)
	}

	if stats.TimedEvents != 2 {
		t.Errorf("TimedEvents = %d, want 2", stats.TimedEvents)
	}
	if stats.AllDayEvents != 2 {
		t.Errorf("AllDayEvents = %d, want 2", stats.AllDayEvents)
	}
	if stats.MultiDayBars != 1 {
		t.Errorf("MultiDayBars = %d, want 1", stats.MultiDayBars)
	}
	if stats.BusyMinutes != 240 {
		t.Errorf("BusyMinutes = %d, want 240", stats.BusyMinutes)
	}
	if want := day2.Format("Mon Jan 2"); stats.BusiestDay != want {
		t.Errorf("BusiestDay = %q, want %q", stats.BusiestDay, want)
	}
}

func TestEventDurationMinutesImpliedEnd(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	e := &event.Event{ID: "a", Title: "open ended", Start: start}

	if got := EventDurationMinutes(e); got != 60 {
		t.Errorf("EventDurationMinutes = %d, want 60 for an implied end", got)
	}
}

func TestCalcMaxTitleWidthDefault(t *testing.T) {
	opts := PrintOpts{Verbose: false}
	if got := opts.CalcMaxTitleWidth(40); got != 40 {
		t.Errorf("CalcMaxTitleWidth = %d, want the default 40", got)
	}

	opts = PrintOpts{MaxWidth: 25}
	if got := opts.CalcMaxTitleWidth(40); got != 25 {
		t.Errorf("CalcMaxTitleWidth = %d, want the explicit 25", got)
	}
}
