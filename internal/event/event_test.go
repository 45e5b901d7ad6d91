package event

import (
	"errors"
	"testing"
	"time"
)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.Local)
}

func TestNewValidation(t *testing.T) {
	start := at(2024, 1, 15, 9, 0)

	if _, err := New("", start, start.Add(time.Hour), false); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("empty title: got %v, want ErrEmptyTitle", err)
	}
	if _, err := New("standup", time.Time{}, time.Time{}, false); !errors.Is(err, ErrMissingStart) {
		t.Errorf("zero start: got %v, want ErrMissingStart", err)
	}
	if _, err := New("standup", start, start.Add(-time.Minute), false); !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("end before start: got %v, want ErrEndBeforeStart", err)
	}

	e, err := New("standup", start, time.Time{}, false)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if e.ID == "" {
		t.Error("New should assign an ID")
	}
	if e.Color != DefaultColor {
		t.Errorf("Color = %q, want %q", e.Color, DefaultColor)
	}
}

func TestEffectiveEnd(t *testing.T) {
	start := at(2024, 1, 15, 9, 0)

	e := &Event{Title: "standup", Start: start}
	if got := e.EffectiveEnd(); !got.Equal(start.Add(time.Hour)) {
		t.Errorf("EffectiveEnd with zero end = %v, want start+1h", got)
	}

	e.End = start.Add(30 * time.Minute)
	if got := e.EffectiveEnd(); !got.Equal(e.End) {
		t.Errorf("EffectiveEnd = %v, want %v", got, e.End)
	}
}

func TestIsMultiDay(t *testing.T) {
	single := &Event{Start: at(2024, 1, 15, 9, 0), End: at(2024, 1, 15, 17, 0)}
	if single.IsMultiDay() {
		t.Error("same-day event reported as multi-day")
	}

	overnight := &Event{Start: at(2024, 1, 15, 23, 30), End: at(2024, 1, 16, 1, 0)}
	if !overnight.IsMultiDay() {
		t.Error("overnight event should be multi-day")
	}

	// A zero end one hour before midnight stays single-day, but at 23:30
	// the implied end crosses into the next day.
	implied := &Event{Start: at(2024, 1, 15, 23, 30)}
	if !implied.IsMultiDay() {
		t.Error("implied end past midnight should be multi-day")
	}
}

func TestMultiDayInfoFor(t *testing.T) {
	e := &Event{
		Title: "Offsite",
		Start: at(2024, 3, 10, 9, 0),
		End:   at(2024, 3, 12, 17, 0),
	}

	info, ok := MultiDayInfoFor(e, at(2024, 3, 11, 0, 0))
	if !ok {
		t.Fatal("expected multi-day info for covered day")
	}
	if info.TotalDays != 3 || info.CurrentDay != 2 {
		t.Errorf("info = %+v, want {TotalDays:3 CurrentDay:2}", info)
	}

	if _, ok := MultiDayInfoFor(e, at(2024, 3, 13, 0, 0)); ok {
		t.Error("day outside range should not yield info")
	}

	single := &Event{Title: "standup", Start: at(2024, 3, 10, 9, 0), End: at(2024, 3, 10, 10, 0)}
	if _, ok := MultiDayInfoFor(single, at(2024, 3, 10, 0, 0)); ok {
		t.Error("single-day event should not yield info")
	}
}

func TestTitles(t *testing.T) {
	e := &Event{
		Title: "Offsite",
		Start: at(2024, 3, 10, 9, 0),
		End:   at(2024, 3, 12, 17, 0),
	}
	day := at(2024, 3, 11, 0, 0)

	// DisplayTitle never decorates, even for multi-day events.
	if got := DisplayTitle(e, day); got != "Offsite" {
		t.Errorf("DisplayTitle = %q, want %q", got, "Offsite")
	}
	if got := DecoratedTitle(e, day); got != "Offsite (day 2 of 3)" {
		t.Errorf("DecoratedTitle = %q", got)
	}
}
