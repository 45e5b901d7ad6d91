package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DaveSteven/schedule-tui/internal/event"
)

func testRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func newEvent(t *testing.T, title string, start, end time.Time) *event.Event {
	t.Helper()
	e, err := event.New(title, start, end, false)
	if err != nil {
		t.Fatalf("creating event: %v", err)
	}
	return e
}

func TestCreateAndGetEvent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)
	e := newEvent(t, "standup", start, start.Add(30*time.Minute))
	e.Payload = map[string]string{"source": "ics", "uid": "abc"}

	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	got, err := repo.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if got == nil {
		t.Fatal("GetEvent returned nil for existing event")
	}
	if got.Title != "standup" {
		t.Errorf("title = %q", got.Title)
	}
	if !got.Start.Equal(start) {
		t.Errorf("start = %v, want %v", got.Start, start)
	}
	if got.Payload["uid"] != "abc" {
		t.Errorf("payload = %v", got.Payload)
	}

	missing, err := repo.GetEvent(ctx, "nope")
	if err != nil {
		t.Fatalf("GetEvent missing: %v", err)
	}
	if missing != nil {
		t.Error("GetEvent should return nil for unknown id")
	}
}

func TestListEventsByDateRange(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	day := func(d, h int) time.Time {
		return time.Date(2024, 1, d, h, 0, 0, 0, time.Local)
	}
	events := []*event.Event{
		newEvent(t, "before", day(10, 9), day(10, 10)),
		newEvent(t, "inside", day(15, 9), day(15, 10)),
		newEvent(t, "spans", day(14, 23), day(16, 1)),
		newEvent(t, "after", day(20, 9), day(20, 10)),
	}
	if err := repo.CreateEvents(ctx, events); err != nil {
		t.Fatalf("CreateEvents: %v", err)
	}

	got, err := repo.ListEventsByDateRange(ctx, day(15, 0), day(16, 0))
	if err != nil {
		t.Fatalf("ListEventsByDateRange: %v", err)
	}
	titles := map[string]bool{}
	for _, e := range got {
		titles[e.Title] = true
	}
	if len(got) != 2 || !titles["inside"] || !titles["spans"] {
		t.Errorf("got %v, want inside and spans", titles)
	}
}

func TestListIncludesImpliedEnd(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	// No end time: the implied one-hour duration crosses midnight.
	e := &event.Event{
		ID:        "open",
		Title:     "late call",
		Start:     time.Date(2024, 1, 14, 23, 30, 0, 0, time.Local),
		CreatedAt: time.Now(),
	}
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	got, err := repo.ListEventsByDateRange(ctx,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("ListEventsByDateRange: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("implied end should reach Jan 15, got %d events", len(got))
	}
	if !got[0].End.IsZero() {
		t.Error("zero end must round-trip as zero")
	}
}

func TestUpdateEventTimes(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	e := newEvent(t, "standup", start, start.Add(time.Hour))
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	newStart := start.Add(2 * time.Hour)
	if err := repo.UpdateEventTimes(ctx, e.ID, newStart, newStart.Add(30*time.Minute)); err != nil {
		t.Fatalf("UpdateEventTimes: %v", err)
	}

	got, err := repo.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if !got.Start.Equal(newStart) || !got.End.Equal(newStart.Add(30*time.Minute)) {
		t.Errorf("times = %v..%v", got.Start, got.End)
	}

	err = repo.UpdateEventTimes(ctx, "missing", newStart, newStart.Add(time.Hour))
	if !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("unknown id: got %v, want ErrEventNotFound", err)
	}
}

func TestUpdateEventTitle(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	e := newEvent(t, "standup", start, start.Add(time.Hour))
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := repo.UpdateEventTitle(ctx, e.ID, "  daily sync  "); err != nil {
		t.Fatalf("UpdateEventTitle: %v", err)
	}
	got, _ := repo.GetEvent(ctx, e.ID)
	if got.Title != "daily sync" {
		t.Errorf("title = %q", got.Title)
	}

	if err := repo.UpdateEventTitle(ctx, e.ID, "   "); !errors.Is(err, event.ErrEmptyTitle) {
		t.Errorf("blank title: got %v, want ErrEmptyTitle", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	e := newEvent(t, "standup", start, start.Add(time.Hour))
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if err := repo.DeleteEvent(ctx, e.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if err := repo.DeleteEvent(ctx, e.ID); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("double delete: got %v, want ErrEventNotFound", err)
	}
}

func TestListEventIDs(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	a := newEvent(t, "one", start, start.Add(time.Hour))
	a.ID = "aaa111"
	b := newEvent(t, "two", start, start.Add(time.Hour))
	b.ID = "aab222"
	c := newEvent(t, "three", start, start.Add(time.Hour))
	c.ID = "zzz333"
	if err := repo.CreateEvents(ctx, []*event.Event{a, b, c}); err != nil {
		t.Fatalf("CreateEvents: %v", err)
	}

	ids, err := repo.ListEventIDs(ctx, "aa")
	if err != nil {
		t.Fatalf("ListEventIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ids = %v, want two matches", ids)
	}

	ids, err = repo.ListEventIDs(ctx, "zzz")
	if err != nil {
		t.Fatalf("ListEventIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "zzz333" {
		t.Errorf("ids = %v, want [zzz333]", ids)
	}

	ids, err = repo.ListEventIDs(ctx, "nope")
	if err != nil {
		t.Fatalf("ListEventIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want none", ids)
	}
}
