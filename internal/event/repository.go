package event

import (
	"context"
	"time"
)

// Repository defines the storage interface for events.
type Repository interface {
	// CreateEvent adds a new event to the repository.
	CreateEvent(ctx context.Context, e *Event) error

	// CreateEvents adds multiple events in a batch (used by calendar import).
	CreateEvents(ctx context.Context, events []*Event) error

	// GetEvent retrieves an event by ID. Returns nil when not found.
	GetEvent(ctx context.Context, id string) (*Event, error)

	// DeleteEvent removes an event by ID.
	DeleteEvent(ctx context.Context, id string) error

	// ListEventsByDateRange returns all events whose inclusive day span
	// intersects [start, end].
	ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*Event, error)

	// UpdateEventTimes rewrites an event's start and end after a drag or
	// resize commit. Returns ErrEventNotFound for unknown IDs.
	UpdateEventTimes(ctx context.Context, id string, newStart, newEnd time.Time) error

	// UpdateEventTitle renames an event in place.
	UpdateEventTitle(ctx context.Context, id string, title string) error

	// ListEventIDs returns the IDs starting with prefix, used to expand
	// abbreviated IDs on the command line.
	ListEventIDs(ctx context.Context, prefix string) ([]string, error)

	// Close releases any resources held by the repository.
	Close() error
}
