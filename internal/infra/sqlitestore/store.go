// Package sqlitestore persists the todo collection and filter state in
// a SQLite database. It stores the same logical record as the JSON
// backend: an insertion-ordered todo table plus a single meta row.
package sqlitestore

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/tododeck/tododeck/internal/domain"
)

// schemaVersion matches the JSON backend so records carry the same
// version across backends.
const schemaVersion = "4.0.0"

const schemaDDL = `
CREATE TABLE IF NOT EXISTS todos (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    text TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    completed INTEGER NOT NULL DEFAULT 0,
    priority TEXT NOT NULL DEFAULT 'medium',
    created_at TEXT NOT NULL DEFAULT '',
    updated_at TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS meta (
    key INTEGER PRIMARY KEY CHECK (key = 1),
    version TEXT NOT NULL,
    search_query TEXT NOT NULL DEFAULT '',
    status_filter TEXT NOT NULL DEFAULT 'all',
    priority_filter TEXT NOT NULL DEFAULT 'all',
    last_updated TEXT NOT NULL
);
`

// Store implements domain.TodoRepository using SQLite.
type Store struct {
	clock  domain.Clock
	logger *slog.Logger
	dbPath string
}

// New creates a Store and initializes the database schema. Parent
// directories are created automatically.
func New(dbPath string, clock domain.Clock, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{dbPath: dbPath, clock: clock, logger: logger}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

// connect opens a connection with WAL mode enabled.
func (s *Store) connect() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	return db, nil
}

func (s *Store) ensureSchema() error {
	db, err := s.connect()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("execute schema DDL: %w", err)
	}
	return nil
}

// Load reads all todos in insertion order plus the stored filters.
// Rows carrying older-schema values are repaired with the same
// coercions as the JSON backend and re-persisted.
func (s *Store) Load() (domain.StoredState, error) {
	empty := domain.StoredState{Todos: []domain.Todo{}, Filters: domain.DefaultFilterState()}

	db, err := s.connect()
	if err != nil {
		s.logger.Warn("todo database unavailable, starting empty", "error", err)
		return empty, nil
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query(`
		SELECT id, text, description, completed, priority, created_at, updated_at
		FROM todos
		ORDER BY position
	`)
	if err != nil {
		s.logger.Warn("querying todos failed, starting empty", "error", err)
		return empty, nil
	}
	defer func() { _ = rows.Close() }()

	now := s.clock.Now()
	todos := make([]domain.Todo, 0)
	for rows.Next() {
		var id, text, description, priority, createdAt, updatedAt string
		var completed int
		if err := rows.Scan(&id, &text, &description, &completed, &priority, &createdAt, &updatedAt); err != nil {
			s.logger.Warn("scanning todo row failed, starting empty", "error", err)
			return empty, nil
		}
		prio := domain.Priority(priority)
		if !prio.IsValid() {
			prio = domain.PriorityMedium
		}
		todos = append(todos, domain.Todo{
			ID:          id,
			Text:        text,
			Description: description,
			Completed:   completed != 0,
			Priority:    prio,
			CreatedAt:   parseTime(createdAt, now),
			UpdatedAt:   parseTime(updatedAt, now),
		})
	}
	if err := rows.Err(); err != nil {
		s.logger.Warn("iterating todo rows failed, starting empty", "error", err)
		return empty, nil
	}

	filters, version := s.readMeta(db)
	state := domain.StoredState{Todos: todos, Filters: filters}

	if version != "" && version != schemaVersion {
		s.logger.Info("migrating todo data", "from", version, "to", schemaVersion)
		if err := s.Save(state.Todos, &filters); err != nil {
			s.logger.Warn("re-persisting migrated data failed", "error", err)
		}
	}

	return state, nil
}

// readMeta returns the stored filters and record version. Missing or
// invalid values fall back to defaults field by field.
func (s *Store) readMeta(db *sql.DB) (domain.FilterState, string) {
	filters := domain.DefaultFilterState()

	var version, searchQuery, statusFilter, priorityFilter string
	err := db.QueryRow(`SELECT version, search_query, status_filter, priority_filter FROM meta WHERE key = 1`).
		Scan(&version, &searchQuery, &statusFilter, &priorityFilter)
	if err != nil {
		return filters, ""
	}

	if trimmed, err := domain.ValidateSearchQuery(searchQuery); err == nil {
		filters.SearchQuery = trimmed
	}
	if status, err := domain.ParseFilterStatus(statusFilter); err == nil {
		filters.Status = status
	}
	if priority, err := domain.ParseFilterPriority(priorityFilter); err == nil {
		filters.Priority = priority
	}
	return filters, version
}

// Save replaces the stored record in one transaction. A nil filters
// pointer preserves the previously stored filters.
func (s *Store) Save(todos []domain.Todo, filters *domain.FilterState) error {
	db, err := s.connect()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	effective := domain.DefaultFilterState()
	if filters != nil {
		effective = *filters
	} else {
		effective, _ = s.readMeta(db)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM todos`); err != nil {
		return fmt.Errorf("clear todos: %w", err)
	}
	for _, t := range todos {
		_, err := tx.Exec(`
			INSERT INTO todos (id, text, description, completed, priority, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, t.ID, t.Text, t.Description, boolToInt(t.Completed), string(t.Priority),
			t.CreatedAt.Format(time.RFC3339Nano), t.UpdatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert todo %s: %w", t.ID, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO meta (key, version, search_query, status_filter, priority_filter, last_updated)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			version = excluded.version,
			search_query = excluded.search_query,
			status_filter = excluded.status_filter,
			priority_filter = excluded.priority_filter,
			last_updated = excluded.last_updated
	`, schemaVersion, effective.SearchQuery, string(effective.Status), string(effective.Priority),
		s.clock.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("update meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// IsAvailable probes the database with a trivial query.
func (s *Store) IsAvailable() bool {
	db, err := s.connect()
	if err != nil {
		return false
	}
	defer func() { _ = db.Close() }()

	var one int
	return db.QueryRow(`SELECT 1`).Scan(&one) == nil
}

// Clear removes all stored todos and the meta row.
func (s *Store) Clear() error {
	db, err := s.connect()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(`DELETE FROM todos`); err != nil {
		return fmt.Errorf("clear todos: %w", err)
	}
	if _, err := db.Exec(`DELETE FROM meta`); err != nil {
		return fmt.Errorf("clear meta: %w", err)
	}
	return nil
}

// Info reports metadata from the meta row.
func (s *Store) Info() (domain.StorageInfo, error) {
	db, err := s.connect()
	if err != nil {
		return domain.StorageInfo{}, nil
	}
	defer func() { _ = db.Close() }()

	var version, lastUpdated string
	err = db.QueryRow(`SELECT version, last_updated FROM meta WHERE key = 1`).Scan(&version, &lastUpdated)
	if err != nil {
		return domain.StorageInfo{}, nil
	}
	return domain.StorageInfo{
		HasData:     true,
		Version:     version,
		LastUpdated: parseTime(lastUpdated, time.Time{}),
	}, nil
}

func parseTime(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fallback
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure Store implements TodoRepository.
var _ domain.TodoRepository = (*Store)(nil)
