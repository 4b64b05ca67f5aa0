package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tododeck/tododeck/internal/app"
	"github.com/tododeck/tododeck/internal/tui"
)

// newTUICommand creates the tui command launching the interactive UI.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Short:   "Open the interactive terminal UI",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := tui.New(c.Store)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}
}
