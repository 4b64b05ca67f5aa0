// Package store owns the canonical todo collection and filter state.
// It is the only component allowed to mutate them; every action
// produces a fresh State with the derived view and statistics already
// recomputed.
package store

import (
	"math"

	"github.com/tododeck/tododeck/internal/domain"
)

// State is an immutable snapshot of the store. FilteredTodos and the
// statistics are pure functions of (Todos, Filters), recomputed on
// every transition. Counts and percentage reflect the filtered view,
// not the full collection; that is a deliberate product choice.
type State struct {
	Todos                []domain.Todo
	FilteredTodos        []domain.Todo
	Filters              domain.FilterState
	PriorityCounts       domain.PriorityCounts
	TotalCount           int
	CompletedCount       int
	CompletionPercentage int
}

// Visualization is the read-only projection consumed by progress
// renderers. Consumers must never feed it back into the store.
type Visualization struct {
	FilteredTodos        []domain.Todo
	PriorityCounts       domain.PriorityCounts
	CompletionPercentage int
	TotalCount           int
}

// deriveState builds a full State from the canonical pair.
func deriveState(todos []domain.Todo, filters domain.FilterState) State {
	filtered := domain.ApplyFilters(todos, filters)

	completed := 0
	var counts domain.PriorityCounts
	for _, t := range filtered {
		if t.Completed {
			completed++
		}
		switch t.Priority {
		case domain.PriorityHigh:
			counts.High++
		case domain.PriorityMedium:
			counts.Medium++
		case domain.PriorityLow:
			counts.Low++
		}
	}

	percentage := 0
	if len(filtered) > 0 {
		percentage = int(math.Round(float64(completed) / float64(len(filtered)) * 100))
	}

	return State{
		Todos:                todos,
		FilteredTodos:        filtered,
		Filters:              filters,
		TotalCount:           len(filtered),
		CompletedCount:       completed,
		CompletionPercentage: percentage,
		PriorityCounts:       counts,
	}
}
