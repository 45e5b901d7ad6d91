// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/DaveSteven/schedule-tui/internal/event"
)

// timeLayout is how timestamps are stored; it sorts lexicographically
// and stays legible in the SQLite datetime functions.
const timeLayout = "2006-01-02 15:04:05"

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateEvent adds a new event to the repository.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	payload, err := marshalPayload(e.Payload)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO events (id, title, start_at, end_at, color, all_day, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Start.Format(timeLayout),
		nullableTime(e.End),
		e.Color,
		boolToInt(e.AllDay),
		payload,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// CreateEvents adds multiple events in a batch using a transaction,
// used by calendar import.
func (s *SQLite) CreateEvents(ctx context.Context, events []*event.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO events (id, title, start_at, end_at, color, all_day, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range events {
		payload, err := marshalPayload(e.Payload)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx,
			e.ID,
			e.Title,
			e.Start.Format(timeLayout),
			nullableTime(e.End),
			e.Color,
			boolToInt(e.AllDay),
			payload,
			e.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting event %q: %w", e.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

const selectColumns = `id, title, start_at, end_at, color, all_day, payload, created_at`

// GetEvent retrieves an event by ID. Returns nil when not found.
func (s *SQLite) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	query := `SELECT ` + selectColumns + ` FROM events WHERE id = ?`

	e, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// DeleteEvent removes an event by ID.
func (s *SQLite) DeleteEvent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", event.ErrEventNotFound, id)
	}

	return nil
}

// ListEventsByDateRange returns all events whose day span intersects
// [start, end] inclusive. Events without an end time count their
// implied one-hour end.
func (s *SQLite) ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM events
		WHERE date(start_at) <= ?
		  AND date(coalesce(end_at, datetime(start_at, '+1 hour'))) >= ?
		ORDER BY start_at
	`

	rows, err := s.db.QueryContext(ctx, query, end.Format("2006-01-02"), start.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// UpdateEventTimes rewrites an event's start and end, used by the
// drag/resize commit path.
func (s *SQLite) UpdateEventTimes(ctx context.Context, id string, newStart, newEnd time.Time) error {
	query := `UPDATE events SET start_at = ?, end_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		newStart.Format(timeLayout),
		nullableTime(newEnd),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating event times: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", event.ErrEventNotFound, id)
	}

	return nil
}

// UpdateEventTitle renames an event in place.
func (s *SQLite) UpdateEventTitle(ctx context.Context, id string, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return event.ErrEmptyTitle
	}

	result, err := s.db.ExecContext(ctx, `UPDATE events SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return fmt.Errorf("updating event title: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", event.ErrEventNotFound, id)
	}

	return nil
}

// ListEventIDs returns the IDs starting with prefix, used to expand
// abbreviated IDs on the command line.
func (s *SQLite) ListEventIDs(ctx context.Context, prefix string) ([]string, error) {
	query := `SELECT id FROM events WHERE id LIKE ? || '%' ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("querying event ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning event id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event ids: %w", err)
	}
	return ids, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*event.Event, error) {
	var (
		e         event.Event
		startAt   string
		endAt     sql.NullString
		allDay    int
		payload   sql.NullString
		createdAt string
	)

	err := row.Scan(&e.ID, &e.Title, &startAt, &endAt, &e.Color, &allDay, &payload, &createdAt)
	if err != nil {
		return nil, err
	}

	e.Start, err = parseTime(startAt)
	if err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}

	if endAt.Valid {
		e.End, err = parseTime(endAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing end time: %w", err)
		}
	}

	e.AllDay = allDay != 0

	if payload.Valid && payload.String != "" {
		if err := json.Unmarshal([]byte(payload.String), &e.Payload); err != nil {
			return nil, fmt.Errorf("parsing payload: %w", err)
		}
	}

	e.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &e, nil
}

// parseTime parses a timestamp in the formats SQLite might return.
// Values without a zone are treated as local time so dates match
// time.Now() based comparisons.
func parseTime(s string) (time.Time, error) {
	localFormats := []string{timeLayout, "2006-01-02 15:04", "2006-01-02"}
	for _, f := range localFormats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func marshalPayload(p map[string]string) (any, error) {
	if len(p) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	return string(b), nil
}
