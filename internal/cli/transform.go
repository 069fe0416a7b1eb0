package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-cipher-lab/internal/ui"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/spf13/cobra"
)

type transformFlags struct {
	method  string
	key     string
	decrypt bool
	quiet   bool
}

func (r *runner) newTransformCmd() *cobra.Command {
	var f transformFlags

	cmd := &cobra.Command{
		Use:   "transform [text...]",
		Short: "Encrypt or decrypt text",
		Long: `Run a transform over text. Words are joined with single spaces; with no
arguments, or a single "-", the text is read from stdin.

Examples:
  cipher transform -m caesar -k 5 "Hello, World"
  cipher transform -m hex -d "68 69"
  echo secret | cipher transform -m base64`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			mode := models.Encrypt
			if f.decrypt {
				mode = models.Decrypt
			}

			result, err := r.services.CipherService.Transform(cmd.Context(), models.TransformRequest{
				Method: models.Method(f.method),
				Mode:   mode,
				Input:  input,
				Key:    f.key,
			})
			if err != nil {
				return fmt.Errorf("transform with %s: %w", ui.Highlight.Sprint(f.method), err)
			}

			out := cmd.OutOrStdout()
			if f.quiet {
				fmt.Fprintln(out, result.Output)
				return nil
			}
			printField(out, "Output", result.Output)
			printField(out, "Strength", formatStrength(result.Strength))
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.method, "method", "m", string(models.Caesar), "cipher method, see \"cipher methods\"")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "key; every method has a default")
	cmd.Flags().BoolVarP(&f.decrypt, "decrypt", "d", false, "run the inverse transform")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "print the output only")

	return cmd
}

// readInput joins args, or reads all of in when args are empty or "-". A
// single trailing newline from stdin is dropped.
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func formatStrength(score int) string {
	label := "strong"
	switch {
	case score < 40:
		label = "weak"
	case score < 70:
		label = "medium"
	}
	return ui.Strength(score).Sprintf("%d%%", score) + " " + ui.Muted.Sprint(label)
}
