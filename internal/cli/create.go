package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var createJSON bool

var createCmd = &cobra.Command{
	Use:   "create <name> <email>",
	Short: "Create a record",
	Long: `Create a record with the next sequential id and save the registry document.

Example:
  rolodex create "John Doe" john@example.com`,
	Args: cobra.ExactArgs(2),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&createJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	r, err := openRegistry()
	if err != nil {
		return err
	}

	rec, err := r.Create(args[0], args[1])
	if err != nil {
		return fmt.Errorf("creating %s: %w", r.EntityName(), err)
	}
	if err := saveRegistry(r); err != nil {
		return err
	}
	logger.Info("record created", slog.Int("id", rec.ID), slog.String("entity", r.EntityName()))

	if createJSON {
		return printJSON(cmd, viewOf(rec))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s %d: %s <%s>\n", r.EntityName(), rec.ID, rec.Name, rec.Email)
	return nil
}
