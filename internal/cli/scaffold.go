package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rolodex-labs/rolodex/internal/scaffold"
	"github.com/spf13/cobra"
)

var scaffoldOutputDir string

func init() {
	scaffoldCmd.PersistentFlags().StringVar(&scaffoldOutputDir, "output-dir", "", "Output directory (default: ./<entity>)")
	rootCmd.AddCommand(scaffoldCmd)

	scaffoldCmd.AddCommand(scaffoldCLICmd)
	scaffoldCmd.AddCommand(scaffoldLibraryCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate a project skeleton for an entity",
	Long:  `Generate a command-line application or a library skeleton whose types are named after an entity.`,
}

var scaffoldCLICmd = &cobra.Command{
	Use:   "cli <entity>",
	Short: "Scaffold a command-line application",
	Long: `Scaffold a Cobra command-line application with process, validate and report commands.

Example:
  rolodex scaffold cli inventory`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runScaffold(cmd, scaffold.KindCLI, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
		fmt.Fprintln(cmd.OutOrStdout(), "  1. Edit commands.go to add your command logic")
		fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'go mod tidy && go build' to verify compilation")
		return nil
	},
}

var scaffoldLibraryCmd = &cobra.Command{
	Use:   "library <entity>",
	Short: "Scaffold a library",
	Long: `Scaffold a Go library with a model, an in-memory service and a seed export document.

Example:
  rolodex scaffold library blog-post`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runScaffold(cmd, scaffold.KindLibrary, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
		fmt.Fprintln(cmd.OutOrStdout(), "  1. Edit model.go to add fields")
		fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'go test ./...'")
		return nil
	},
}

func runScaffold(cmd *cobra.Command, kind, name string) error {
	if err := scaffold.ValidateName(name); err != nil {
		return err
	}

	outDir := scaffoldOutputDir
	if outDir == "" {
		outDir = filepath.Join(".", name)
	}

	result, err := scaffold.Generate(kind, scaffold.NewScaffoldData(name, kind), outDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s %s at %s/\n", name, kind, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
	return nil
}
