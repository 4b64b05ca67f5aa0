package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tododeck/tododeck/internal/app"
)

// newSearchCommand creates the search command. The query persists as
// part of the filter state until cleared.
func newSearchCommand(c *app.Container) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:     "search [query]",
		Short:   "Set the persisted search query",
		GroupID: groupView,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if !clear {
				if len(args) == 0 {
					return fmt.Errorf("search requires a query (or --clear)")
				}
				query = args[0]
			}

			if err := c.Store.SetSearchQuery(query); err != nil {
				return err
			}

			st := c.Store.State()
			if query == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Search cleared")
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Searching %q: %d of %d todos match\n",
					st.Filters.SearchQuery, len(st.FilteredTodos), len(st.Todos))
			}
			writeTodoTable(cmd, st.FilteredTodos)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the search query")

	return cmd
}

// newFilterCommand creates the filter command setting status and
// priority filters.
func newFilterCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status   string
		Priority string
	}

	cmd := &cobra.Command{
		Use:     "filter",
		Short:   "Set status and priority filters",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		Long: `Set the persisted status and priority filters.

Examples:
  tododeck filter --status incomplete
  tododeck filter --priority high
  tododeck filter --status completed --priority low`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Status == "" && opts.Priority == "" {
				return fmt.Errorf("filter requires --status or --priority")
			}

			if opts.Status != "" {
				if err := c.Store.SetStatusFilter(opts.Status); err != nil {
					return err
				}
			}
			if opts.Priority != "" {
				if err := c.Store.SetPriorityFilter(opts.Priority); err != nil {
					return err
				}
			}

			st := c.Store.State()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", describeFilters(st.Filters))
			writeTodoTable(cmd, st.FilteredTodos)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Status filter: all, completed or incomplete")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority filter: all, high, medium or low")

	return cmd
}

// newClearFiltersCommand creates the clear-filters command.
func newClearFiltersCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "clear-filters",
		Short:   "Reset search, status and priority filters",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.Store.ClearFilters()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Filters cleared")
			return nil
		},
	}
}
