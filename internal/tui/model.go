// Package tui implements the interactive terminal UI. It is a thin
// shell over the store: every keypress maps to a store action and the
// view is re-rendered from the resulting snapshot.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tododeck/tododeck/internal/store"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeList Mode = iota
	ModeAdd
	ModeEdit
	ModeSearch
	ModeConfirmDelete
)

// Model is the bubbletea model for the TUI.
type Model struct {
	store *store.Store

	keys   KeyMap
	styles Styles
	help   help.Model

	input    textinput.Model
	progress progress.Model

	mode   Mode
	editID string // id under edit when mode == ModeEdit
	cursor int
	width  int
	height int
	errMsg string
}

// New creates a TUI model bound to the store.
func New(st *store.Store) Model {
	input := textinput.New()
	input.CharLimit = 200

	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	return Model{
		store:    st,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		help:     help.New(),
		input:    input,
		progress: bar,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// selected returns the cursor position clamped to the filtered view.
func (m Model) selected(st store.State) int {
	if len(st.FilteredTodos) == 0 {
		return -1
	}
	if m.cursor >= len(st.FilteredTodos) {
		return len(st.FilteredTodos) - 1
	}
	return m.cursor
}
