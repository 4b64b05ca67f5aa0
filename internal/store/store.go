package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/tododeck/tododeck/internal/domain"
)

// addActionKey is the rate-limiter key for todo creation.
const addActionKey = "add-todo"

// Store is the single source of truth for todos and filters. All
// collaborators (persistence, clock, id generation, rate limiting) are
// injected; the transition logic itself performs no I/O. Actions are
// serialized through one mutex, so each action observes the result of
// the previous one and derived fields are never stale.
type Store struct {
	repo    domain.TodoRepository
	clock   domain.Clock
	ids     domain.IDGenerator
	limiter *domain.RateLimiter
	logger  *slog.Logger

	mu      sync.Mutex
	todos   []domain.Todo
	filters domain.FilterState
}

// New creates a Store with the given collaborators. repo may be nil,
// in which case the store operates without durability.
func New(repo domain.TodoRepository, clock domain.Clock, ids domain.IDGenerator, limiter *domain.RateLimiter, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		repo:    repo,
		clock:   clock,
		ids:     ids,
		limiter: limiter,
		logger:  logger,
		filters: domain.DefaultFilterState(),
	}
}

// Load replaces the collection and filters wholesale from the
// repository. It is called once at startup; the adapter has already
// validated and migrated the data, so no per-todo validation applies.
func (s *Store) Load() error {
	if s.repo == nil {
		return nil
	}
	stored, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("load todos: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = stored.Todos
	s.filters = stored.Filters
	return nil
}

// State returns a snapshot with copied slices; mutating the snapshot
// cannot affect the store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deriveState(s.copyTodos(), s.filters)
}

// Visualization returns the read-only projection for progress views.
func (s *Store) Visualization() Visualization {
	st := s.State()
	return Visualization{
		FilteredTodos:        st.FilteredTodos,
		PriorityCounts:       st.PriorityCounts,
		CompletionPercentage: st.CompletionPercentage,
		TotalCount:           st.TotalCount,
	}
}

// Add validates the raw inputs and appends a new todo. The rate
// limiter rejects before any state mutation occurs.
func (s *Store) Add(text, description, priority string) (domain.Todo, error) {
	if s.limiter != nil && !s.limiter.Allow(addActionKey) {
		return domain.Todo{}, domain.ErrRateLimited
	}

	sanitizedText, err := domain.ValidateTodoText(text)
	if err != nil {
		return domain.Todo{}, err
	}
	sanitizedDesc, err := domain.ValidateTodoDescription(description)
	if err != nil {
		return domain.Todo{}, err
	}
	prio, err := domain.ParsePriority(priority)
	if err != nil {
		return domain.Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	todo := domain.Todo{
		ID:          s.ids.NewID(),
		Text:        sanitizedText,
		Description: sanitizedDesc,
		Completed:   false,
		Priority:    prio,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.todos = append(s.copyTodos(), todo)
	s.persist()
	return todo, nil
}

// Toggle flips the completed flag of the todo with the given id and
// refreshes its UpdatedAt.
func (s *Store) Toggle(id string) (domain.Todo, error) {
	if err := domain.ValidateTodoID(id); err != nil {
		return domain.Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todos := s.copyTodos()
	for i := range todos {
		if todos[i].ID != id {
			continue
		}
		todos[i].Completed = !todos[i].Completed
		todos[i].UpdatedAt = s.clock.Now()
		s.todos = todos
		s.persist()
		return todos[i], nil
	}
	return domain.Todo{}, fmt.Errorf("%w: %s", domain.ErrTodoNotFound, id)
}

// Delete removes the todo with the given id. Deleting a nonexistent id
// is an idempotent no-op, not an error.
func (s *Store) Delete(id string) error {
	if err := domain.ValidateTodoID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID != id {
			continue
		}
		todos := s.copyTodos()
		s.todos = append(todos[:i], todos[i+1:]...)
		s.persist()
		return nil
	}
	return nil
}

// Edit replaces text, description and priority of an existing todo and
// refreshes its UpdatedAt. CreatedAt and the completed flag are kept.
func (s *Store) Edit(id, text, description, priority string) (domain.Todo, error) {
	if err := domain.ValidateTodoID(id); err != nil {
		return domain.Todo{}, err
	}
	sanitizedText, err := domain.ValidateTodoText(text)
	if err != nil {
		return domain.Todo{}, err
	}
	sanitizedDesc, err := domain.ValidateTodoDescription(description)
	if err != nil {
		return domain.Todo{}, err
	}
	prio, err := domain.ParsePriority(priority)
	if err != nil {
		return domain.Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todos := s.copyTodos()
	for i := range todos {
		if todos[i].ID != id {
			continue
		}
		todos[i].Text = sanitizedText
		todos[i].Description = sanitizedDesc
		todos[i].Priority = prio
		todos[i].UpdatedAt = s.clock.Now()
		s.todos = todos
		s.persist()
		return todos[i], nil
	}
	return domain.Todo{}, fmt.Errorf("%w: %s", domain.ErrTodoNotFound, id)
}

// SetSearchQuery replaces the search filter.
func (s *Store) SetSearchQuery(query string) error {
	trimmed, err := domain.ValidateSearchQuery(query)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchQuery = trimmed
	s.persist()
	return nil
}

// SetStatusFilter replaces the status filter.
func (s *Store) SetStatusFilter(status string) error {
	parsed, err := domain.ParseFilterStatus(status)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Status = parsed
	s.persist()
	return nil
}

// SetPriorityFilter replaces the priority filter.
func (s *Store) SetPriorityFilter(priority string) error {
	parsed, err := domain.ParseFilterPriority(priority)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Priority = parsed
	s.persist()
	return nil
}

// ClearFilters resets the filters to their defaults. It never fails.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = domain.DefaultFilterState()
	s.persist()
}

// persist writes the current state back through the repository.
// Persistence is best-effort: a storage failure is logged and the
// completed transition stands. Callers hold the mutex.
func (s *Store) persist() {
	if s.repo == nil {
		return
	}
	filters := s.filters
	if err := s.repo.Save(s.todos, &filters); err != nil {
		s.logger.Warn("persisting todos failed, continuing without durability", "error", err)
	}
}

// copyTodos returns a copy of the canonical slice so completed
// transitions never alias snapshots handed out earlier.
func (s *Store) copyTodos() []domain.Todo {
	todos := make([]domain.Todo, len(s.todos))
	copy(todos, s.todos)
	return todos
}
