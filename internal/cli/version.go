package cli

import (
	"github.com/spf13/cobra"
)

func (r *runner) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			info := r.opts.BuildInfo
			printField(out, "Build version", info.BuildVersion())
			printField(out, "Build date", info.BuildDate())
			printField(out, "Build commit", info.BuildCommit())

			if r.server == "" {
				return nil
			}
			version, err := r.services.AppInfoService.GetAppVersion(cmd.Context())
			if err != nil {
				r.logger.Err(err).Msg("server version")
				printField(out, "Server version", "unavailable")
				return nil
			}
			printField(out, "Server version", version)
			return nil
		},
	}
}
