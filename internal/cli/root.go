// Package cli provides the one-shot command-line interface of the cipher
// tool: transform, strength, methods and version.
package cli

import (
	"io"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/client"
	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
	"github.com/MKhiriev/go-cipher-lab/internal/ui"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/spf13/cobra"
)

// BackendFunc builds the services a command runs against.
type BackendFunc func(cfg config.StructuredConfig, logger *logger.Logger) (*service.Services, error)

// Options configure the root command.
type Options struct {
	BuildInfo models.AppBuildInfo

	// Backend defaults to client.NewBackend.
	Backend BackendFunc
}

type runner struct {
	opts Options

	server  string
	timeout time.Duration
	verbose bool
	noColor bool

	services *service.Services
	logger   *logger.Logger
}

// NewRootCommand returns the "cipher" command with every subcommand
// attached.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Backend == nil {
		opts.Backend = client.NewBackend
	}
	r := &runner{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "cipher",
		Short: "Toy text ciphers and encodings",
		Long: `cipher runs the Encryption Tool transforms from the command line.

Methods: caesar, xor, base64, binary, hex, vigenere, railfence, and the
simulated playfair, aes and rsa. None of them are secure.

Transforms run in-process unless --server points at a cipher server.`,
		Version:           opts.BuildInfo.BuildVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: r.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&r.server, "server", "s", "", "address of a cipher server (runs locally when empty)")
	rootCmd.PersistentFlags().DurationVar(&r.timeout, "timeout", config.DefaultRequestTimeout, "request timeout when talking to a server")
	rootCmd.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "log to stderr")
	rootCmd.PersistentFlags().BoolVar(&r.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(r.newTransformCmd())
	rootCmd.AddCommand(r.newStrengthCmd())
	rootCmd.AddCommand(r.newMethodsCmd())
	rootCmd.AddCommand(r.newVersionCmd())

	return rootCmd
}

func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	if r.noColor {
		ui.DisableColor()
	}

	r.logger = logger.Nop()
	if r.verbose {
		r.logger = logger.NewConsoleLogger("cipher-cli", cmd.ErrOrStderr())
	}

	cfg := config.StructuredConfig{
		App: config.App{
			Version:      r.opts.BuildInfo.BuildVersion(),
			HistoryLimit: config.DefaultHistoryLimit,
		},
		Adapter: config.Adapter{
			HTTPAddress:    r.server,
			RequestTimeout: r.timeout,
		},
	}

	services, err := r.opts.Backend(cfg, r.logger)
	if err != nil {
		return err
	}
	r.services = services
	return nil
}

func printField(w io.Writer, label, value string) {
	_, _ = io.WriteString(w, ui.Label.Sprint(label+":")+" "+value+"\n")
}
