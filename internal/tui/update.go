package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tododeck/tododeck/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 50 {
			m.progress.Width = 50
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAdd, ModeEdit, ModeSearch:
			return m.updateInput(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// updateList handles keys in the default list mode.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.State()
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(st.FilteredTodos)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if i := m.selected(st); i >= 0 {
			if _, err := m.store.Toggle(st.FilteredTodos[i].ID); err != nil {
				m.errMsg = err.Error()
			}
		}

	case key.Matches(msg, m.keys.New):
		m.mode = ModeAdd
		m.input.Placeholder = "What needs doing?"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if i := m.selected(st); i >= 0 {
			m.mode = ModeEdit
			m.editID = st.FilteredTodos[i].ID
			m.input.Placeholder = ""
			m.input.SetValue(st.FilteredTodos[i].Text)
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Delete):
		if m.selected(st) >= 0 {
			m.mode = ModeConfirmDelete
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.input.Placeholder = "Search text and descriptions"
		m.input.SetValue(st.Filters.SearchQuery)
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Status):
		if err := m.store.SetStatusFilter(nextStatus(st.Filters.Status)); err != nil {
			m.errMsg = err.Error()
		}

	case key.Matches(msg, m.keys.Priority):
		if err := m.store.SetPriorityFilter(nextPriority(st.Filters.Priority)); err != nil {
			m.errMsg = err.Error()
		}

	case key.Matches(msg, m.keys.ClearFilters):
		m.store.ClearFilters()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateInput handles keys while the text input is focused.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeList
		m.editID = ""
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		value := m.input.Value()
		m.input.Blur()

		switch m.mode {
		case ModeAdd:
			if _, err := m.store.Add(value, "", ""); err != nil {
				m.errMsg = err.Error()
			}
		case ModeEdit:
			m.applyEdit(value)
		case ModeSearch:
			if err := m.store.SetSearchQuery(value); err != nil {
				m.errMsg = err.Error()
			}
		}
		m.mode = ModeList
		m.editID = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyEdit replaces the edited todo's text, keeping its description
// and priority.
func (m *Model) applyEdit(text string) {
	for _, t := range m.store.State().Todos {
		if t.ID != m.editID {
			continue
		}
		if _, err := m.store.Edit(t.ID, text, t.Description, string(t.Priority)); err != nil {
			m.errMsg = err.Error()
		}
		return
	}
}

// updateConfirmDelete handles the delete confirmation dialog.
func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		st := m.store.State()
		if i := m.selected(st); i >= 0 {
			if err := m.store.Delete(st.FilteredTodos[i].ID); err != nil {
				m.errMsg = err.Error()
			}
		}
		m.mode = ModeList

	case key.Matches(msg, m.keys.Escape), msg.Type == tea.KeyRunes:
		m.mode = ModeList
	}

	return m, nil
}

// nextStatus cycles the status filter: all -> incomplete -> completed.
func nextStatus(s domain.FilterStatus) string {
	switch s {
	case domain.StatusAll:
		return string(domain.StatusIncomplete)
	case domain.StatusIncomplete:
		return string(domain.StatusCompleted)
	default:
		return string(domain.StatusAll)
	}
}

// nextPriority cycles the priority filter: all -> high -> medium -> low.
func nextPriority(p domain.FilterPriority) string {
	switch p {
	case domain.FilterPriorityAll:
		return string(domain.FilterPriorityHigh)
	case domain.FilterPriorityHigh:
		return string(domain.FilterPriorityMedium)
	case domain.FilterPriorityMedium:
		return string(domain.FilterPriorityLow)
	default:
		return string(domain.FilterPriorityAll)
	}
}
