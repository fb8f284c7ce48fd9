package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var opts filterOptions

	cmd := &cobra.Command{
		Use:   "list [export.csv]",
		Short: "List transactions in a Mint export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.loadHistory(args)
			if err != nil {
				return err
			}

			if h.Len() > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), h.String())
			}
			return nil
		},
	}

	opts.addFlags(cmd)
	return cmd
}
