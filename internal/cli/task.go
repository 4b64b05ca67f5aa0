package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tododeck/tododeck/internal/app"
	"github.com/tododeck/tododeck/internal/domain"
	"github.com/tododeck/tododeck/internal/store"
)

// newAddCommand creates the add command for creating todos.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Priority    string
	}

	cmd := &cobra.Command{
		Use:     "add <text>",
		Short:   "Add a new todo",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Add a new todo to the collection.

Examples:
  tododeck add "Buy milk"
  tododeck add "Ship release" --desc "tag, changelog, announce" --priority high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, err := c.Store.Add(args[0], opts.Description, opts.Priority)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added todo %s\n", todo.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "desc", "", "Optional description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: high, medium or low (default medium)")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List todos matching the active filters",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := c.Store.State()
			todos := st.FilteredTodos
			if all {
				todos = st.Todos
			}
			writeTodoTable(cmd, todos)
			if !all && domain.HasActiveFilters(st.Filters) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", describeFilters(st.Filters))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Ignore active filters and list everything")

	return cmd
}

// writeTodoTable renders todos as an aligned table.
func writeTodoTable(cmd *cobra.Command, todos []domain.Todo) {
	out := cmd.OutOrStdout()
	if len(todos) == 0 {
		_, _ = fmt.Fprintln(out, "No todos.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tDONE\tPRIORITY\tTEXT")
	for _, t := range todos {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		text := t.Text
		if t.Description != "" {
			text += " - " + t.Description
		}
		_, _ = fmt.Fprintf(w, "%s\t[%s]\t%s\t%s\n", shortID(t.ID), mark, t.Priority, text)
	}
	_ = w.Flush()
}

// shortID abbreviates UUIDs for table display; short ids pass through.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 && len(id) == 36 {
		return id[:8]
	}
	return id
}

// describeFilters summarizes the active filter state for list output.
func describeFilters(f domain.FilterState) string {
	parts := []string{}
	if strings.TrimSpace(f.SearchQuery) != "" {
		parts = append(parts, fmt.Sprintf("search %q", f.SearchQuery))
	}
	if f.Status != domain.StatusAll {
		parts = append(parts, "status "+string(f.Status))
	}
	if f.Priority != domain.FilterPriorityAll {
		parts = append(parts, "priority "+string(f.Priority))
	}
	return "Active filters: " + strings.Join(parts, ", ")
}

// resolveID expands an abbreviated id to the unique full id it
// prefixes. An exact match always wins.
func resolveID(st store.State, id string) (string, error) {
	for _, t := range st.Todos {
		if t.ID == id {
			return id, nil
		}
	}
	var matches []string
	for _, t := range st.Todos {
		if strings.HasPrefix(t.ID, id) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return id, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", id, len(matches))
	}
}

// newDoneCommand creates the done command toggling completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Short:   "Toggle a todo's completed state",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveID(c.Store.State(), args[0])
			if err != nil {
				return err
			}
			todo, err := c.Store.Toggle(id)
			if err != nil {
				return err
			}
			state := "reopened"
			if todo.Completed {
				state = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Todo %s %s\n", shortID(todo.ID), state)
			return nil
		},
	}
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Priority    string
	}

	cmd := &cobra.Command{
		Use:     "edit <id> <text>",
		Short:   "Replace a todo's text, description and priority",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveID(c.Store.State(), args[0])
			if err != nil {
				return err
			}
			todo, err := c.Store.Edit(id, args[1], opts.Description, opts.Priority)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated todo %s\n", shortID(todo.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "desc", "", "New description (empty clears it)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority: high, medium or low")

	return cmd
}

// newRemoveCommand creates the rm command. Removing an id that does
// not exist is a no-op.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a todo",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveID(c.Store.State(), args[0])
			if err != nil {
				return err
			}
			if err := c.Store.Delete(id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed todo %s\n", shortID(id))
			return nil
		},
	}
}
