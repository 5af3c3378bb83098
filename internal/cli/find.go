package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/rolodex-labs/rolodex/internal/entity"
	"github.com/spf13/cobra"
)

var findJSON bool

var findCmd = &cobra.Command{
	Use:   "find [term]",
	Short: "Find records whose name contains a term",
	Long: `List records whose name contains the given term (case-sensitive substring),
ordered by id. Without a term every record is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	term := ""
	if len(args) > 0 {
		term = args[0]
	}

	r, err := openRegistry()
	if err != nil {
		return err
	}

	matches := r.FindByName(term)

	if findJSON {
		views := make([]recordView, 0, len(matches))
		for _, rec := range matches {
			views = append(views, viewOf(rec))
		}
		return printJSON(cmd, views)
	}

	if len(matches) == 0 {
		msg := fmt.Sprintf("No %s records", r.EntityName())
		if term != "" {
			msg += fmt.Sprintf(" matching %q", term)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}
	return printRecordTable(cmd, matches)
}

func printRecordTable(cmd *cobra.Command, records []entity.Record) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL")
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\n", rec.ID, rec.Name, rec.Email)
	}
	return w.Flush()
}
