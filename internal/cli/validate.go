package cli

import (
	"fmt"

	"github.com/rolodex-labs/rolodex/internal/document"
	"github.com/rolodex-labs/rolodex/internal/entity"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate an export document",
	Long: `Check a YAML or JSON export document against the export schema, then confirm
that its records load into an empty registry (ids 1..N, non-empty fields).`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	result, err := document.ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is invalid:\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", issue)
		}
		return fmt.Errorf("%s failed validation with %d issue(s)", path, len(result.Issues))
	}

	r := entity.NewRegistry()
	if err := r.LoadFile(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d %s records)\n", path, r.Len(), r.EntityName())
	return nil
}
