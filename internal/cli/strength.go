package cli

import (
	"fmt"

	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/spf13/cobra"
)

func (r *runner) newStrengthCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "strength [text...]",
		Short: "Score text with the strength heuristic",
		Long: `Score text with the presentation strength heuristic. The score only
looks at length, character classes and a fixed per-method bonus; it says
nothing about real security.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			score, err := r.services.CipherService.Strength(cmd.Context(), models.StrengthRequest{
				Text:   text,
				Method: models.Method(method),
			})
			if err != nil {
				return fmt.Errorf("strength: %w", err)
			}

			printField(cmd.OutOrStdout(), "Strength", formatStrength(score))
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "method that produced the text; adds its bonus")

	return cmd
}
