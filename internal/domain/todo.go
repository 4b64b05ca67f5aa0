// Package domain contains core business entities and interfaces.
package domain

import "time"

// Priority is the importance level of a todo.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is one of the three known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// FilterStatus selects todos by completion state.
type FilterStatus string

const (
	StatusAll        FilterStatus = "all"
	StatusCompleted  FilterStatus = "completed"
	StatusIncomplete FilterStatus = "incomplete"
)

// FilterPriority selects todos by priority.
type FilterPriority string

const (
	FilterPriorityAll    FilterPriority = "all"
	FilterPriorityHigh   FilterPriority = "high"
	FilterPriorityMedium FilterPriority = "medium"
	FilterPriorityLow    FilterPriority = "low"
)

// Todo is a single user-managed task.
// Fields are ordered to minimize memory padding.
type Todo struct {
	CreatedAt   time.Time `json:"createdAt"`             // Fixed at creation
	UpdatedAt   time.Time `json:"updatedAt"`             // Refreshed on every mutation
	ID          string    `json:"id"`                    // Opaque unique identifier, immutable
	Text        string    `json:"text"`                  // Task text (required, 1-200 chars)
	Description string    `json:"description,omitempty"` // Optional detail (empty = absent)
	Priority    Priority  `json:"priority"`              // Defaults to medium
	Completed   bool      `json:"completed"`             // Defaults to false
}

// FilterState is the active combination of search, status and priority
// used to derive the visible subset of todos.
type FilterState struct {
	SearchQuery string         `json:"searchQuery"`
	Status      FilterStatus   `json:"status"`
	Priority    FilterPriority `json:"priority"`
}

// PriorityCounts holds per-priority todo counts for the current view.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}
