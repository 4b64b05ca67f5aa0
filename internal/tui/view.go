package tui

import (
	"fmt"
	"strings"

	"github.com/tododeck/tododeck/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	st := m.store.State()
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("tododeck"))
	b.WriteString("\n")

	if domain.HasActiveFilters(st.Filters) {
		b.WriteString(m.styles.FilterLine.Render(filterSummary(st.Filters)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderStats())

	switch m.mode {
	case ModeAdd, ModeEdit, ModeSearch:
		b.WriteString("\n\n")
		prompt := "New todo"
		switch m.mode {
		case ModeEdit:
			prompt = "Edit todo"
		case ModeSearch:
			prompt = "Search"
		}
		b.WriteString(m.styles.InputPrompt.Render(prompt))
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(m.input.View()))

	case ModeConfirmDelete:
		b.WriteString("\n\n")
		b.WriteString(m.styles.Dialog.Render(
			m.styles.DialogTitle.Render("Delete this todo?") + "\n\npress y to confirm, esc to cancel"))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.ErrorMsg.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.App.Render(b.String())
}

// renderList renders the filtered todos with the cursor.
func (m Model) renderList() string {
	st := m.store.State()
	if len(st.FilteredTodos) == 0 {
		return m.styles.TodoDesc.Render("No todos match the current view.")
	}

	sel := m.selected(st)
	var b strings.Builder
	for i, t := range st.FilteredTodos {
		cursor := "  "
		line := m.styles.TodoNormal
		cursorStyle := m.styles.CursorNormal
		if i == sel {
			cursor = "> "
			line = m.styles.TodoSelected
			cursorStyle = m.styles.CursorSelected
		}
		if t.Completed && i != sel {
			line = m.styles.TodoDone
		}

		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}

		b.WriteString(cursorStyle.Render(cursor))
		b.WriteString(line.Render(fmt.Sprintf("%s %s", mark, t.Text)))
		b.WriteString(" ")
		b.WriteString(m.styles.PriorityStyle(t.Priority).Render(PriorityIcon(t.Priority)))
		if t.Description != "" {
			b.WriteString(m.styles.TodoDesc.Render("  " + t.Description))
		}
		if i < len(st.FilteredTodos)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderStats renders the progress bar and view counts.
func (m Model) renderStats() string {
	st := m.store.State()

	bar := m.progress.ViewAs(float64(st.CompletionPercentage) / 100)
	summary := fmt.Sprintf("%d%%  %d/%d done  ▲%d ◆%d ▽%d",
		st.CompletionPercentage,
		st.CompletedCount,
		st.TotalCount,
		st.PriorityCounts.High,
		st.PriorityCounts.Medium,
		st.PriorityCounts.Low,
	)

	return m.styles.Stats.Render(bar + "\n" + summary)
}

// filterSummary formats the active filters for the header line.
func filterSummary(f domain.FilterState) string {
	parts := []string{}
	if strings.TrimSpace(f.SearchQuery) != "" {
		parts = append(parts, fmt.Sprintf("search: %q", f.SearchQuery))
	}
	if f.Status != domain.StatusAll {
		parts = append(parts, "status: "+string(f.Status))
	}
	if f.Priority != domain.FilterPriorityAll {
		parts = append(parts, "priority: "+string(f.Priority))
	}
	return "Filters  " + strings.Join(parts, "  ")
}
