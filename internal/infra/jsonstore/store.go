// Package jsonstore persists the todo collection and filter state as a
// single JSON record on disk.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tododeck/tododeck/internal/domain"
)

// SchemaVersion is the current persisted record version.
const SchemaVersion = "4.0.0"

// record is the on-disk JSON structure.
type record struct {
	Todos       []storedTodo   `json:"todos"`
	Filters     *storedFilters `json:"filters,omitempty"`
	Version     string         `json:"version"`
	LastUpdated string         `json:"lastUpdated"`
}

// storedTodo keeps dates as strings so older or malformed records can
// be repaired during migration instead of failing to decode.
type storedTodo struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	Completed   bool   `json:"completed"`
}

type storedFilters struct {
	SearchQuery string `json:"searchQuery"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// Store implements domain.TodoRepository using a single JSON file.
type Store struct {
	clock  domain.Clock
	logger *slog.Logger
	path   string
}

// New creates a Store for the given file path. The file does not need
// to exist; it is created on first write.
func New(path string, clock domain.Clock, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, clock: clock, logger: logger}
}

// Load reads the stored record. A missing file, corrupt JSON or an
// unavailable store all yield an empty collection with default
// filters. Older-schema records are migrated in place and immediately
// re-persisted under the current version.
func (s *Store) Load() (domain.StoredState, error) {
	empty := domain.StoredState{Todos: []domain.Todo{}, Filters: domain.DefaultFilterState()}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("todo data unreadable, starting empty", "path", s.path, "error", err)
		}
		return empty, nil
	}

	var rec record
	if err := json.Unmarshal(content, &rec); err != nil {
		s.logger.Warn("todo data corrupt, starting empty", "path", s.path, "error", err)
		return empty, nil
	}

	now := s.clock.Now()
	todos := make([]domain.Todo, 0, len(rec.Todos))
	for _, st := range rec.Todos {
		todos = append(todos, migrateTodo(st, now))
	}

	state := domain.StoredState{Todos: todos, Filters: migrateFilters(rec.Filters)}

	if rec.Version != SchemaVersion {
		s.logger.Info("migrating todo data", "from", rec.Version, "to", SchemaVersion)
		filters := state.Filters
		if err := s.Save(state.Todos, &filters); err != nil {
			s.logger.Warn("re-persisting migrated data failed", "error", err)
		}
	}

	return state, nil
}

// migrateTodo upgrades one stored todo to the current schema: missing
// priority defaults to medium, missing description stays absent, and
// missing or invalid dates are coerced to now.
func migrateTodo(st storedTodo, now time.Time) domain.Todo {
	priority := domain.Priority(st.Priority)
	if !priority.IsValid() {
		priority = domain.PriorityMedium
	}
	return domain.Todo{
		ID:          st.ID,
		Text:        st.Text,
		Description: st.Description,
		Completed:   st.Completed,
		Priority:    priority,
		CreatedAt:   parseTime(st.CreatedAt, now),
		UpdatedAt:   parseTime(st.UpdatedAt, now),
	}
}

// migrateFilters validates each stored filter field independently,
// falling back to the default for anything out of range.
func migrateFilters(sf *storedFilters) domain.FilterState {
	filters := domain.DefaultFilterState()
	if sf == nil {
		return filters
	}
	if trimmed, err := domain.ValidateSearchQuery(sf.SearchQuery); err == nil {
		filters.SearchQuery = trimmed
	}
	if status, err := domain.ParseFilterStatus(sf.Status); err == nil {
		filters.Status = status
	}
	if priority, err := domain.ParseFilterPriority(sf.Priority); err == nil {
		filters.Priority = priority
	}
	return filters
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

// Save writes todos and filters under the current schema version. When
// filters is nil the previously stored filters are preserved via
// read-modify-write; todos and filters are always co-persisted in one
// record.
func (s *Store) Save(todos []domain.Todo, filters *domain.FilterState) error {
	var sf *storedFilters
	if filters != nil {
		sf = &storedFilters{
			SearchQuery: filters.SearchQuery,
			Status:      string(filters.Status),
			Priority:    string(filters.Priority),
		}
	} else {
		sf = s.readStoredFilters()
	}

	stored := make([]storedTodo, 0, len(todos))
	for _, t := range todos {
		stored = append(stored, storedTodo{
			ID:          t.ID,
			Text:        t.Text,
			Description: t.Description,
			Completed:   t.Completed,
			Priority:    string(t.Priority),
			CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt:   t.UpdatedAt.Format(time.RFC3339Nano),
		})
	}

	rec := record{
		Todos:       stored,
		Filters:     sf,
		Version:     SchemaVersion,
		LastUpdated: s.clock.Now().UTC().Format(time.RFC3339),
	}

	content, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todo data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return writeAtomic(s.path, content, 0o600)
}

// readStoredFilters returns the filters from the existing record, or
// nil when there is none.
func (s *Store) readStoredFilters() *storedFilters {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var rec record
	if err := json.Unmarshal(content, &rec); err != nil {
		return nil
	}
	return rec.Filters
}

// IsAvailable probes the store with a test write and remove. All
// underlying errors report as false, never as a failure.
func (s *Store) IsAvailable() bool {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o600); err != nil {
		return false
	}
	return os.Remove(probe) == nil
}

// Clear removes the stored record.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear todo data: %w", err)
	}
	return nil
}

// Info reports metadata about the stored record without migrating it.
func (s *Store) Info() (domain.StorageInfo, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return domain.StorageInfo{}, nil
	}
	var rec record
	if err := json.Unmarshal(content, &rec); err != nil {
		return domain.StorageInfo{}, nil
	}
	return domain.StorageInfo{
		HasData:     true,
		Version:     rec.Version,
		LastUpdated: parseTime(rec.LastUpdated, time.Time{}),
	}, nil
}

// writeAtomic writes via a temp file and rename so a crash mid-write
// cannot corrupt the record.
func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Ensure Store implements TodoRepository.
var _ domain.TodoRepository = (*Store)(nil)
