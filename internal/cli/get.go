package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show the record with the given id",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q: must be an integer", args[0])
	}

	r, err := openRegistry()
	if err != nil {
		return err
	}

	rec, ok := r.Get(id)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s with id %d\n", r.EntityName(), id)
		return nil
	}

	if getJSON {
		return printJSON(cmd, viewOf(rec))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ID:    %d\nName:  %s\nEmail: %s\n", rec.ID, rec.Name, rec.Email)
	return nil
}
