package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tododeck/tododeck/internal/app"
	"github.com/tododeck/tododeck/internal/domain"
	"gopkg.in/yaml.v3"
)

// exportDocument is the serialized shape shared by both export formats.
type exportDocument struct {
	ExportedAt time.Time          `json:"exportedAt" yaml:"exportedAt"`
	Todos      []domain.Todo      `json:"todos" yaml:"todos"`
	Filters    domain.FilterState `json:"filters" yaml:"filters"`
	Total      int                `json:"total" yaml:"total"`
}

// newExportCommand creates the export command. The export always
// covers the full collection, not the filtered view.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Output string
	}

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export all todos as JSON or YAML",
		GroupID: groupData,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := c.Store.State()
			doc := exportDocument{
				ExportedAt: c.Clock.Now().UTC(),
				Todos:      st.Todos,
				Filters:    st.Filters,
				Total:      len(st.Todos),
			}

			var data []byte
			var err error
			switch opts.Format {
			case "json":
				data, err = json.MarshalIndent(doc, "", "  ")
				if err == nil {
					data = append(data, '\n')
				}
			case "yaml":
				data, err = yaml.Marshal(doc)
			default:
				return fmt.Errorf("unknown format: %q (expected 'json' or 'yaml')", opts.Format)
			}
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}

			if opts.Output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d todos to %s\n", doc.Total, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "json", "Export format: json or yaml")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// newResetCommand creates the reset command wiping persisted data.
func newResetCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "reset",
		Short:   "Delete all todos and stored filters",
		GroupID: groupData,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				return fmt.Errorf("reset deletes all data; pass --force to confirm")
			}
			if !c.Repo.IsAvailable() {
				return domain.ErrStorageUnavailable
			}
			if err := c.Repo.Clear(); err != nil {
				return fmt.Errorf("clear storage: %w", err)
			}
			if err := c.Store.Load(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm the reset")

	return cmd
}
