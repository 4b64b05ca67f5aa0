package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tododeck/tododeck/internal/app"
	"github.com/tododeck/tododeck/internal/domain"
)

// newStatsCommand creates the stats command. Statistics reflect the
// filtered view, so an active filter changes what stats reports.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show progress statistics for the current view",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := c.Store.State()
			out := cmd.OutOrStdout()

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "Todos:\t%d\n", st.TotalCount)
			_, _ = fmt.Fprintf(w, "Completed:\t%d\n", st.CompletedCount)
			_, _ = fmt.Fprintf(w, "Progress:\t%d%% %s\n", st.CompletionPercentage, progressBar(st.CompletionPercentage, 20))
			_, _ = fmt.Fprintf(w, "High:\t%d\n", st.PriorityCounts.High)
			_, _ = fmt.Fprintf(w, "Medium:\t%d\n", st.PriorityCounts.Medium)
			_, _ = fmt.Fprintf(w, "Low:\t%d\n", st.PriorityCounts.Low)
			_ = w.Flush()

			if domain.HasActiveFilters(st.Filters) {
				_, _ = fmt.Fprintf(out, "\n%s (%d todos total)\n", describeFilters(st.Filters), len(st.Todos))
			}

			info, err := c.Repo.Info()
			if err == nil && info.HasData {
				_, _ = fmt.Fprintf(out, "\nStorage: schema %s", info.Version)
				if !info.LastUpdated.IsZero() {
					_, _ = fmt.Fprintf(out, ", last updated %s", info.LastUpdated.Format("2006-01-02 15:04:05"))
				}
				_, _ = fmt.Fprintln(out)
			}
			if !c.Repo.IsAvailable() {
				_, _ = fmt.Fprintln(out, "Warning: storage is unavailable, changes will not persist")
			}

			return nil
		},
	}
}

// progressBar renders a fixed-width ASCII bar for a 0-100 percentage.
func progressBar(percentage, width int) string {
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
