package timeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/DaveSteven/schedule-tui/internal/event"
)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.Local)
}

func day(y int, m time.Month, d int) DayWindow {
	return DayWindow{Date: time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

func TestProjectOvernightEvent(t *testing.T) {
	events := []*event.Event{{
		ID:    "e1",
		Title: "redeye",
		Start: at(2024, 1, 1, 23, 30),
		End:   at(2024, 1, 2, 1, 0),
	}}
	p := &Projector{}

	first := p.Project(events, day(2024, 1, 1))
	if len(first) != 1 {
		t.Fatalf("day 1: got %d blocks, want 1", len(first))
	}
	if first[0].StartMinute != 1410 {
		t.Errorf("day 1 start = %d, want 1410", first[0].StartMinute)
	}
	// End clips to 23:59, so the block runs 1410..1439.
	if first[0].DurationMinute != 29 {
		t.Errorf("day 1 duration = %d, want 29", first[0].DurationMinute)
	}

	second := p.Project(events, day(2024, 1, 2))
	if len(second) != 1 {
		t.Fatalf("day 2: got %d blocks, want 1", len(second))
	}
	if second[0].StartMinute != 0 || second[0].DurationMinute != 60 {
		t.Errorf("day 2 = start %d dur %d, want 0/60", second[0].StartMinute, second[0].DurationMinute)
	}
}

func TestProjectFiltersByDay(t *testing.T) {
	events := []*event.Event{{
		ID:    "e1",
		Start: at(2024, 1, 5, 9, 0),
		End:   at(2024, 1, 5, 10, 0),
	}}
	p := &Projector{}
	if got := p.Project(events, day(2024, 1, 6)); len(got) != 0 {
		t.Errorf("event outside window projected: %+v", got)
	}
}

func TestProjectMidnightStartIsAllDay(t *testing.T) {
	// Legacy records without the all-day flag set but starting at
	// exactly midnight classify as all-day and leave the timed grid.
	events := []*event.Event{{
		ID:    "legacy",
		Start: at(2024, 1, 5, 0, 0),
		End:   at(2024, 1, 5, 10, 0),
	}}
	p := &Projector{}
	if got := p.Project(events, day(2024, 1, 5)); len(got) != 0 {
		t.Errorf("midnight-start event should be all-day, got %+v", got)
	}
	if !IsAllDay(events[0]) {
		t.Error("IsAllDay should classify a 00:00 start as all-day")
	}
}

func TestProjectMissingEndDefaultsToHour(t *testing.T) {
	events := []*event.Event{{
		ID:    "open",
		Start: at(2024, 1, 5, 9, 0),
	}}
	p := &Projector{}
	got := p.Project(events, day(2024, 1, 5))
	if len(got) != 1 {
		t.Fatalf("got %d blocks, want 1", len(got))
	}
	if got[0].DurationMinute != 60 {
		t.Errorf("duration = %d, want 60", got[0].DurationMinute)
	}
}

func TestProjectSkipsMissingStart(t *testing.T) {
	var warned string
	p := &Projector{Warn: func(format string, args ...any) {
		warned = fmt.Sprintf(format, args...)
	}}
	events := []*event.Event{
		{ID: "bad"},
		{ID: "good", Start: at(2024, 1, 5, 9, 0), End: at(2024, 1, 5, 10, 0)},
	}
	got := p.Project(events, day(2024, 1, 5))
	if len(got) != 1 || got[0].ID != "good" {
		t.Fatalf("bad record should be skipped, got %+v", got)
	}
	if warned == "" {
		t.Error("expected a warning for the skipped record")
	}
}

func TestProjectDurationFloor(t *testing.T) {
	events := []*event.Event{{
		ID:    "tiny",
		Start: at(2024, 1, 5, 9, 0),
		End:   at(2024, 1, 5, 9, 5),
	}}
	p := &Projector{}
	got := p.Project(events, day(2024, 1, 5))
	if len(got) != 1 || got[0].DurationMinute != MinDuration {
		t.Fatalf("tiny event duration = %+v, want floor %d", got, MinDuration)
	}
}
