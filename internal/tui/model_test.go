package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tododeck/tododeck/internal/domain"
	"github.com/tododeck/tododeck/internal/store"
	"github.com/tododeck/tododeck/internal/testutil"
)

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := domain.NewRateLimiter(20, time.Minute, clock)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(testutil.NewMockRepository(), clock, &testutil.SeqIDGenerator{}, limiter, logger)
	return New(st), st
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ViewRendersTodos(t *testing.T) {
	m, st := newTestModel(t)
	_, err := st.Add("Buy milk", "2 liters", "high")
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "tododeck")
	assert.Contains(t, view, "Buy milk")
	assert.Contains(t, view, "2 liters")
}

func TestModel_ViewEmpty(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No todos match the current view.")
}

func TestModel_ToggleSelected(t *testing.T) {
	m, st := newTestModel(t)
	_, err := st.Add("Buy milk", "", "")
	require.NoError(t, err)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.True(t, st.State().Todos[0].Completed)
	assert.Contains(t, m.View(), "[x]")
}

func TestModel_CursorMovesWithinBounds(t *testing.T) {
	m, st := newTestModel(t)
	_, err := st.Add("one", "", "")
	require.NoError(t, err)
	_, err = st.Add("two", "", "")
	require.NoError(t, err)

	next, _ := m.Update(keyMsg("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	// Moving past the end stays on the last entry.
	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyMsg("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_AddFlow(t *testing.T) {
	m, st := newTestModel(t)

	next, _ := m.Update(keyMsg("n"))
	m = next.(Model)
	assert.Equal(t, ModeAdd, m.mode)

	m.input.SetValue("Buy milk")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Equal(t, ModeList, m.mode)
	require.Len(t, st.State().Todos, 1)
	assert.Equal(t, "Buy milk", st.State().Todos[0].Text)
}

func TestModel_AddFlow_Cancel(t *testing.T) {
	m, st := newTestModel(t)

	next, _ := m.Update(keyMsg("n"))
	m = next.(Model)
	m.input.SetValue("half-typed")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	assert.Equal(t, ModeList, m.mode)
	assert.Empty(t, st.State().Todos)
}

func TestModel_EditFlow(t *testing.T) {
	m, st := newTestModel(t)
	_, err := st.Add("Buy milk", "2 liters", "high")
	require.NoError(t, err)

	next, _ := m.Update(keyMsg("e"))
	m = next.(Model)
	assert.Equal(t, ModeEdit, m.mode)
	assert.Equal(t, "Buy milk", m.input.Value())

	m.input.SetValue("Buy oat milk")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Equal(t, ModeList, m.mode)
	state := st.State()
	assert.Equal(t, "Buy oat milk", state.Todos[0].Text)
	assert.Equal(t, "2 liters", state.Todos[0].Description, "edit keeps the description")
	assert.Equal(t, domain.PriorityHigh, state.Todos[0].Priority, "edit keeps the priority")
}

func TestModel_SearchFlow(t *testing.T) {
	m, st := newTestModel(t)
	_, err := st.Add("Buy milk", "", "")
	require.NoError(t, err)
	_, err = st.Add("Walk the dog", "", "")
	require.NoError(t, err)

	next, _ := m.Update(keyMsg("/"))
	m = next.(Model)
	assert.Equal(t, ModeSearch, m.mode)

	m.input.SetValue("milk")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	state := st.State()
	assert.Equal(t, "milk", state.Filters.SearchQuery)
	require.Len(t, state.FilteredTodos, 1)

	view := m.View()
	assert.Contains(t, view, "Buy milk")
	assert.NotContains(t, view, "Walk the dog")
}

func TestModel_DeleteRequiresConfirmation(t *testing.T) {
	m, st := newTestModel(t)
	_, err := st.Add("Buy milk", "", "")
	require.NoError(t, err)

	next, _ := m.Update(keyMsg("d"))
	m = next.(Model)
	assert.Equal(t, ModeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), "Delete this todo?")

	// Escape keeps the todo.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Len(t, st.State().Todos, 1)

	next, _ = m.Update(keyMsg("d"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("y"))
	m = next.(Model)
	assert.Empty(t, st.State().Todos)
	assert.Equal(t, ModeList, m.mode)
}

func TestModel_FilterCycling(t *testing.T) {
	m, st := newTestModel(t)

	next, _ := m.Update(keyMsg("s"))
	m = next.(Model)
	assert.Equal(t, domain.StatusIncomplete, st.State().Filters.Status)

	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)
	assert.Equal(t, domain.StatusCompleted, st.State().Filters.Status)

	next, _ = m.Update(keyMsg("p"))
	m = next.(Model)
	assert.Equal(t, domain.FilterPriorityHigh, st.State().Filters.Priority)

	next, _ = m.Update(keyMsg("c"))
	m = next.(Model)
	assert.Equal(t, domain.DefaultFilterState(), st.State().Filters)
}

func TestModel_QuitReturnsQuitCmd(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
