package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/go-cipher-lab/internal/ui"
	"github.com/spf13/cobra"
)

func (r *runner) newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			methods, err := r.services.CipherService.Methods(cmd.Context())
			if err != nil {
				return fmt.Errorf("list methods: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tKEY\tBONUS\t")
			for _, m := range methods {
				note := ""
				if m.Simulated {
					note = ui.Muted.Sprint("simulated")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", m.ID, m.Name, m.KeyClass, m.SecurityScore, note)
			}
			return tw.Flush()
		},
	}
}
