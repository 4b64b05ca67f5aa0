// Package cli provides the command-line interface for tododeck.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/tododeck/tododeck/internal/app"
)

// Command group IDs.
const (
	groupTask = "task"
	groupView = "view"
	groupData = "data"
)

// NewRootCommand creates the root command for tododeck.
// It receives the container for dependency injection and version for
// display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tododeck",
		Short: "Local task manager with persisted search and filters",
		Long: `tododeck manages a persisted collection of tasks with full-text
search, status and priority filters, and view-based progress
statistics. Filters are part of the persisted state: what 'list'
shows is exactly what the last search/filter left active.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupView, Title: "View Commands:"},
		&cobra.Group{ID: groupData, Title: "Data Commands:"},
	)

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newDoneCommand(c),
		newEditCommand(c),
		newRemoveCommand(c),
		newSearchCommand(c),
		newFilterCommand(c),
		newClearFiltersCommand(c),
		newStatsCommand(c),
		newExportCommand(c),
		newResetCommand(c),
		newTUICommand(c),
	)

	return root
}
