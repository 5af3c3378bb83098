package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a JSON summary of the registry",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(reportCmd)
}

type registryReport struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Entity    string `json:"entity"`
	File      string `json:"file"`
	Count     int    `json:"count"`
}

func runReport(cmd *cobra.Command, args []string) error {
	r, err := openRegistry()
	if err != nil {
		return err
	}

	report := registryReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    "success",
		Entity:    r.EntityName(),
		File:      settings.RegistryFile,
		Count:     r.Len(),
	}

	if reportOutput == "" {
		return printJSON(cmd, report)
	}

	data, err := jsonOut.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(reportOutput, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report saved to: %s\n", reportOutput)
	return nil
}
