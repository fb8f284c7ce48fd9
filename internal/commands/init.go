package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamhammes/mintalyze/internal/config"
)

func newInitCommand() *cobra.Command {
	var exportPath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default mintalyze.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default(exportPath)
			if err := config.Save(configPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "default Mint export to analyze")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultFileName, "where to write the config")

	return cmd
}
