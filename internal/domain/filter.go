package domain

import "strings"

// DefaultFilterState returns the no-op filter that matches every todo.
func DefaultFilterState() FilterState {
	return FilterState{
		SearchQuery: "",
		Status:      StatusAll,
		Priority:    FilterPriorityAll,
	}
}

// FilterBySearch returns the todos whose text or description contains
// the query, case-insensitively. A blank query matches everything.
func FilterBySearch(todos []Todo, query string) []Todo {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return todos
	}

	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if strings.Contains(strings.ToLower(t.Text), query) {
			out = append(out, t)
			continue
		}
		if t.Description != "" && strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByStatus returns the todos matching the completion status.
func FilterByStatus(todos []Todo, status FilterStatus) []Todo {
	if status == StatusAll {
		return todos
	}

	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		switch status {
		case StatusCompleted:
			if t.Completed {
				out = append(out, t)
			}
		case StatusIncomplete:
			if !t.Completed {
				out = append(out, t)
			}
		}
	}
	return out
}

// FilterByPriority returns the todos with the given priority.
func FilterByPriority(todos []Todo, priority FilterPriority) []Todo {
	if priority == FilterPriorityAll {
		return todos
	}

	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if string(t.Priority) == string(priority) {
			out = append(out, t)
		}
	}
	return out
}

// ApplyFilters composes the three filters as a conjunction, applied in
// the order search, status, priority. Relative todo ordering is
// preserved.
func ApplyFilters(todos []Todo, filters FilterState) []Todo {
	filtered := FilterBySearch(todos, filters.SearchQuery)
	filtered = FilterByStatus(filtered, filters.Status)
	filtered = FilterByPriority(filtered, filters.Priority)
	return filtered
}

// HasActiveFilters reports whether any filter differs from its default.
func HasActiveFilters(filters FilterState) bool {
	return strings.TrimSpace(filters.SearchQuery) != "" ||
		filters.Status != StatusAll ||
		filters.Priority != FilterPriorityAll
}
