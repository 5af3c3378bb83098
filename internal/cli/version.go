package cli

import (
	"fmt"

	"github.com/rolodex-labs/rolodex/internal/branding"
	"github.com/rolodex-labs/rolodex/internal/document"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		if versionJSON {
			return printJSON(cmd, map[string]string{
				"version":        buildVersion,
				"commit":         buildCommit,
				"date":           buildDate,
				"format_version": document.FormatVersion,
			})
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s, export format: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate, document.FormatVersion)
		return nil
	},
}
