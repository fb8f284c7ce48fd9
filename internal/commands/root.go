package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamhammes/mintalyze/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mintalyze",
		Short:   "Analyze Mint transaction exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newListCommand())

	return rootCmd
}
