package tui

import (
	"context"
	"testing"
	"time"

	"github.com/DaveSteven/schedule-tui/internal/config"
	"github.com/DaveSteven/schedule-tui/internal/event"
)

// fakeRepo is an in-memory Repository recording mutations.
type fakeRepo struct {
	events  map[string]*event.Event
	updated []string
	deleted []string
}

func newFakeRepo(events ...*event.Event) *fakeRepo {
	r := &fakeRepo{events: make(map[string]*event.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeRepo) CreateEvent(_ context.Context, e *event.Event) error {
	r.events[e.ID] = e
	return nil
}

func (r *fakeRepo) CreateEvents(ctx context.Context, events []*event.Event) error {
	for _, e := range events {
		if err := r.CreateEvent(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeRepo) GetEvent(_ context.Context, id string) (*event.Event, error) {
	return r.events[id], nil
}

func (r *fakeRepo) DeleteEvent(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return event.ErrEventNotFound
	}
	delete(r.events, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) ListEventsByDateRange(_ context.Context, _, _ time.Time) ([]*event.Event, error) {
	var out []*event.Event
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeRepo) UpdateEventTimes(_ context.Context, id string, start, end time.Time) error {
	e, ok := r.events[id]
	if !ok {
		return event.ErrEventNotFound
	}
	e.Start = start
	e.End = end
	r.updated = append(r.updated, id)
	return nil
}

func (r *fakeRepo) UpdateEventTitle(_ context.Context, id, title string) error {
	e, ok := r.events[id]
	if !ok {
		return event.ErrEventNotFound
	}
	e.Title = title
	r.updated = append(r.updated, id)
	return nil
}

func (r *fakeRepo) ListEventIDs(_ context.Context, prefix string) ([]string, error) {
	var ids []string
	for id := range r.events {
		if len(id) >= len(prefix) && id[:len(prefix)] == prefix {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeRepo) Close() error { return nil }

func testModel(t *testing.T, events ...*event.Event) (Model, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo(events...)
	m := *New(repo, config.Default())
	return m, repo
}

func TestNewDefaults(t *testing.T) {
	m, _ := testModel(t)

	if m.view != ViewWeek {
		t.Errorf("view = %d, want ViewWeek", m.view)
	}
	if len(m.windows) != 7 {
		t.Errorf("windows = %d, want 7", len(m.windows))
	}
	if m.scrollOffset != MinuteToRow(8*60) {
		t.Errorf("scrollOffset = %d, want %d", m.scrollOffset, MinuteToRow(8*60))
	}
}

func TestVisibleWindowsDayView(t *testing.T) {
	m, _ := testModel(t)
	m.view = ViewDay

	windows := m.visibleWindows()
	if len(windows) != 1 {
		t.Fatalf("windows = %d, want 1", len(windows))
	}
	if !windows[0].Date.Equal(m.anchor) {
		t.Errorf("window date = %v, want anchor %v", windows[0].Date, m.anchor)
	}
}

func TestWeekWindowsContainToday(t *testing.T) {
	m, _ := testModel(t)

	found := false
	for _, w := range m.windows {
		if w.IsToday {
			found = true
		}
	}
	if !found {
		t.Error("expected one window flagged as today")
	}
}

func TestRelayoutBuildsRects(t *testing.T) {
	start := time.Date(2026, 3, 4, 9, 0, 0, 0, time.Local) // Wednesday
	e := &event.Event{ID: "e1", Title: "standup", Start: start, End: start.Add(time.Hour)}

	m, _ := testModel(t, e)
	m.anchor = start
	m.width = 76
	m.height = 26
	m.events = []*event.Event{e}
	m.relayout()

	if len(m.rects) != 1 {
		t.Fatalf("rects = %d, want 1", len(m.rects))
	}
	r := m.rects[0]
	if r.Day != 3 { // Wednesday in a Sunday-start week
		t.Errorf("Day = %d, want 3", r.Day)
	}
	if r.TopRow != MinuteToRow(9*60) {
		t.Errorf("TopRow = %d, want %d", r.TopRow, MinuteToRow(9*60))
	}
	if r.Rows != 2 {
		t.Errorf("Rows = %d, want 2", r.Rows)
	}
}

func TestRelayoutIncludesDraft(t *testing.T) {
	m, _ := testModel(t)
	m.width = 76
	m.height = 26

	m.drafts.HandleCanvasClick(m.anchor, 10*60)
	m.relayout()

	found := false
	for _, r := range m.rects {
		if r.IsDraft {
			found = true
			if r.TopRow != MinuteToRow(10*60) {
				t.Errorf("draft TopRow = %d, want %d", r.TopRow, MinuteToRow(10*60))
			}
		}
	}
	if !found {
		t.Error("expected a draft rect after a canvas click")
	}
}
