// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaveSteven/schedule-tui/internal/event"
	"github.com/DaveSteven/schedule-tui/internal/ics"
)

// EventsLoadedMsg is sent when the visible range's events are loaded.
type EventsLoadedMsg struct {
	Events []*event.Event
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// TickMsg drives the current-time indicator refresh.
type TickMsg struct {
	Time time.Time
}

// DragActivateMsg fires a pending drag activation timer. Gen ties the
// timer to the session that scheduled it.
type DragActivateMsg struct {
	Gen uint64
}

// EventSavedMsg is sent after an event create or update lands.
type EventSavedMsg struct {
	ID string
}

// EventDeletedMsg is sent after an event is removed.
type EventDeletedMsg struct {
	ID string
}

// ImportedMsg is sent after an ICS import completes.
type ImportedMsg struct {
	Count int
	Path  string
}

// CalendarChangedMsg is sent when a watched calendar file changes.
type CalendarChangedMsg struct {
	Path string
}

// CopiedMsg is sent after the selection is copied to the clipboard.
type CopiedMsg struct{}

// LoadRange loads all events intersecting [start, end].
func LoadRange(repo event.Repository, start, end time.Time) tea.Cmd {
	return func() tea.Msg {
		events, err := repo.ListEventsByDateRange(context.Background(), start, end)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return EventsLoadedMsg{Events: events}
	}
}

// Tick schedules the next current-time refresh.
func Tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// ScheduleDragActivation fires after the click/drag disambiguation
// delay elapses. The session generation keeps a stale timer harmless.
func ScheduleDragActivation(gen uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return DragActivateMsg{Gen: gen}
	})
}

// SaveEvent persists a new event.
func SaveEvent(repo event.Repository, e *event.Event) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateEvent(context.Background(), e); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving event: %w", err)}
		}
		return EventSavedMsg{ID: e.ID}
	}
}

// CommitEventTimes writes a drag/resize result back to storage.
func CommitEventTimes(repo event.Repository, id string, newStart, newEnd time.Time) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateEventTimes(context.Background(), id, newStart, newEnd); err != nil {
			return ErrMsg{Err: fmt.Errorf("moving event: %w", err)}
		}
		return EventSavedMsg{ID: id}
	}
}

// RenameEvent updates an event's title.
func RenameEvent(repo event.Repository, id, title string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateEventTitle(context.Background(), id, title); err != nil {
			return ErrMsg{Err: fmt.Errorf("renaming event: %w", err)}
		}
		return EventSavedMsg{ID: id}
	}
}

// DeleteEvent removes an event.
func DeleteEvent(repo event.Repository, id string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteEvent(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting event: %w", err)}
		}
		return EventDeletedMsg{ID: id}
	}
}

// ImportICS parses a calendar file and stores its events.
func ImportICS(parser *ics.Parser, repo event.Repository, path string) tea.Cmd {
	return func() tea.Msg {
		events, err := parser.ImportFile(path)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("importing %s: %w", path, err)}
		}
		if err := repo.CreateEvents(context.Background(), events); err != nil {
			return ErrMsg{Err: fmt.Errorf("storing imported events: %w", err)}
		}
		return ImportedMsg{Count: len(events), Path: path}
	}
}

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{}
	}
}

// WaitForCalendarChange blocks on the watcher channel and resurfaces
// the change as a message. Re-issued after every CalendarChangedMsg.
func WaitForCalendarChange(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return CalendarChangedMsg{Path: path}
	}
}

// ClearStatusAfter schedules the status line to clear.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
