package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rolodex-labs/rolodex/internal/branding"
	"github.com/rolodex-labs/rolodex/internal/config"
	"github.com/rolodex-labs/rolodex/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// Global flags.
var (
	registryFile string
	logLevel     string
	logFormat    string
)

var (
	settings config.Settings
	logger   = logging.New("warn", "text", os.Stderr)
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a registry of records (id, name, email) in a YAML or JSON
document, with validated creation, lookup by id, name search and export.
It can also scaffold CLI and library projects for a named entity.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		settings = config.Current()

		if cmd.Flags().Changed("file") {
			settings.RegistryFile = registryFile
		}
		if cmd.Flags().Changed("log-level") {
			settings.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			settings.LogFormat = logFormat
		}

		logger = logging.New(settings.LogLevel, settings.LogFormat, cmd.ErrOrStderr())
		logger.Debug("configuration loaded",
			slog.String("config", config.FilePath()),
			slog.String("registry", settings.RegistryFile),
			slog.String("entity", settings.EntityName))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&registryFile, "file", "f", "", "Registry document (default: registry.file setting or ./"+branding.CLIName()+".yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

// Execute runs the root command with build info injected via ldflags.
// Failures are logged and printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", slog.Any("error", err))
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
