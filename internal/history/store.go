// Package history persists the lifecycle of every dispatched order in a
// local SQLite database, one row per dispatch.
package history

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/osrtools/osrdesk/internal/config"
)

// Order lifecycle statuses.
const (
	StatusSent            = "sent"
	StatusDryRun          = "dry_run"
	StatusPending         = "pending"
	StatusProcessing      = "processing"
	StatusCompleted       = "completed"
	StatusFailed          = "failed"
	StatusCancelled       = "cancelled"
	StatusCancelledDryRun = "cancelled_dry_run"
)

// Entry is one dispatched order.
type Entry struct {
	ID       string
	OrderID  string
	Type     string
	Facility string
	Status   string
	Payload  string
	Created  time.Time
	Updated  time.Time
}

// Active reports whether the entry can still be cancelled.
func (e Entry) Active() bool {
	switch e.Status {
	case StatusCancelled, StatusCancelledDryRun, StatusCompleted, StatusFailed:
		return false
	}
	return true
}

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id          TEXT PRIMARY KEY,
	order_id    TEXT NOT NULL,
	order_type  TEXT NOT NULL,
	facility    TEXT NOT NULL,
	status      TEXT NOT NULL,
	payload     TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_facility ON orders(facility);
CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at);
`

// Store is the SQLite-backed history store.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default history database path, beside the config
// file.
func DefaultPath() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// Open opens (or creates) the history database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new entry. A missing ID is generated; timestamps are set to
// now. The stored entry is returned.
func (s *Store) Add(e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now().UTC().Truncate(time.Second)
	e.Created = now
	e.Updated = now

	_, err := s.db.Exec(`
		INSERT INTO orders (id, order_id, order_type, facility, status, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.OrderID, e.Type, e.Facility, e.Status, e.Payload,
		e.Created.Format(time.RFC3339), e.Updated.Format(time.RFC3339))
	if err != nil {
		return Entry{}, fmt.Errorf("add history entry: %w", err)
	}
	return e, nil
}

// UpdateStatus sets the status of an entry and bumps its update time.
func (s *Store) UpdateStatus(id, status string) error {
	now := time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
	res, err := s.db.Exec(`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		status, now, id)
	if err != nil {
		return fmt.Errorf("update history status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no history entry with id %s", id)
	}
	return nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, order_id, order_type, facility, status, payload, created_at, updated_at
		FROM orders WHERE id = ?`, id)
	return scanEntry(row)
}

// ListFor returns every entry for the facility, most recent first.
func (s *Store) ListFor(facility string) ([]Entry, error) {
	return s.query(`
		SELECT id, order_id, order_type, facility, status, payload, created_at, updated_at
		FROM orders WHERE facility = ?
		ORDER BY created_at DESC, id DESC`, facility)
}

// ActiveFor returns the facility's entries that can still be cancelled,
// most recent first.
func (s *Store) ActiveFor(facility string) ([]Entry, error) {
	return s.query(`
		SELECT id, order_id, order_type, facility, status, payload, created_at, updated_at
		FROM orders
		WHERE facility = ? AND status NOT IN (?, ?, ?, ?)
		ORDER BY created_at DESC, id DESC`,
		facility, StatusCancelled, StatusCancelledDryRun, StatusCompleted, StatusFailed)
}

// Cleanup deletes entries created before the cutoff and returns how many
// rows were removed.
func (s *Store) Cleanup(before time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM orders WHERE created_at < ?`,
		before.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("cleanup history: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var created, updated string
	if err := row.Scan(&e.ID, &e.OrderID, &e.Type, &e.Facility, &e.Status,
		&e.Payload, &created, &updated); err != nil {
		return Entry{}, fmt.Errorf("scan history entry: %w", err)
	}
	var err error
	if e.Created, err = time.Parse(time.RFC3339, created); err != nil {
		return Entry{}, fmt.Errorf("parse created_at: %w", err)
	}
	if e.Updated, err = time.Parse(time.RFC3339, updated); err != nil {
		return Entry{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return e, nil
}
