package domain

import "time"

// StoredState is the persisted pair of todo collection and filters.
type StoredState struct {
	Todos   []Todo
	Filters FilterState
}

// StorageInfo describes the persisted record without loading it fully.
type StorageInfo struct {
	LastUpdated time.Time
	Version     string
	HasData     bool
}

// TodoRepository persists the todo collection and filter state as one
// logical record. Implementations must degrade gracefully: a missing,
// corrupt or older-schema record loads as a repaired or default state,
// never as a hard failure visible to the caller's control flow.
type TodoRepository interface {
	// Load reads the stored record. Absent or unreadable data yields an
	// empty collection and default filters with a nil error.
	Load() (StoredState, error)

	// Save writes todos and filters under the current schema version.
	// A nil filters pointer preserves the previously stored filters.
	Save(todos []Todo, filters *FilterState) error

	// IsAvailable probes the underlying store. It never fails; any
	// storage error reports as false.
	IsAvailable() bool

	// Clear removes the stored record.
	Clear() error

	// Info reports metadata about the stored record.
	Info() (StorageInfo, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator produces unique opaque todo ids. Generated ids must
// satisfy ValidateTodoID.
type IDGenerator interface {
	// NewID returns a new unique id.
	NewID() string
}
