package cli

import (
	"fmt"
	"log/slog"

	"github.com/rolodex-labs/rolodex/internal/document"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export every record to a YAML or JSON document",
	Long: `Write the full id → record mapping to <path>. The encoding follows the file
extension (.json for JSON, YAML otherwise) unless --format is given.
Use "-" to write to stdout with the export.encoding setting.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output encoding: yaml or json")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dest := args[0]

	r, err := openRegistry()
	if err != nil {
		return err
	}

	if dest == "-" {
		enc := document.ParseEncoding(settings.ExportEncoding)
		if exportFormat != "" {
			enc = document.ParseEncoding(exportFormat)
		}
		return r.ExportAll(cmd.OutOrStdout(), enc)
	}

	enc := document.EncodingForPath(dest)
	if exportFormat != "" {
		enc = document.ParseEncoding(exportFormat)
	}
	if err := r.ExportFile(dest, enc); err != nil {
		return fmt.Errorf("exporting to %s: %w", dest, err)
	}

	logger.Info("registry exported", slog.String("path", dest), slog.String("encoding", string(enc)), slog.Int("records", r.Len()))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s records to %s\n", r.Len(), r.EntityName(), dest)
	return nil
}
