// Package testutil provides shared test utilities and mock
// implementations.
package testutil

import (
	"time"

	"github.com/tododeck/tododeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// SeqIDGenerator is a test double for domain.IDGenerator producing
// deterministic ids ("todo-1", "todo-2", ...).
type SeqIDGenerator struct {
	Prefix string
	N      int
}

// NewID returns the next sequential id.
func (g *SeqIDGenerator) NewID() string {
	g.N++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "todo"
	}
	return prefix + "-" + itoa(g.N)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// MockRepository is an in-memory test double for domain.TodoRepository.
type MockRepository struct {
	Stored      domain.StoredState
	LoadErr     error
	SaveErr     error
	Unavailable bool
	SaveCalls   int
	HasStored   bool
}

// NewMockRepository creates an empty MockRepository.
func NewMockRepository() *MockRepository {
	return &MockRepository{
		Stored: domain.StoredState{Todos: []domain.Todo{}, Filters: domain.DefaultFilterState()},
	}
}

// Load returns the stored state.
func (m *MockRepository) Load() (domain.StoredState, error) {
	if m.LoadErr != nil {
		return domain.StoredState{}, m.LoadErr
	}
	return m.Stored, nil
}

// Save records the state.
func (m *MockRepository) Save(todos []domain.Todo, filters *domain.FilterState) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored.Todos = append([]domain.Todo(nil), todos...)
	if filters != nil {
		m.Stored.Filters = *filters
	}
	m.HasStored = true
	return nil
}

// IsAvailable reports the configured availability.
func (m *MockRepository) IsAvailable() bool {
	return !m.Unavailable
}

// Clear resets the stored state.
func (m *MockRepository) Clear() error {
	m.Stored = domain.StoredState{Todos: []domain.Todo{}, Filters: domain.DefaultFilterState()}
	m.HasStored = false
	return nil
}

// Info reports metadata about the stored state.
func (m *MockRepository) Info() (domain.StorageInfo, error) {
	if !m.HasStored {
		return domain.StorageInfo{}, nil
	}
	return domain.StorageInfo{HasData: true, Version: "4.0.0"}, nil
}

// Ensure MockRepository implements TodoRepository.
var _ domain.TodoRepository = (*MockRepository)(nil)
