package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	var opts filterOptions

	cmd := &cobra.Command{
		Use:   "summary [export.csv]",
		Short: "Summarize transactions in a Mint export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.loadHistory(args)
			if err != nil {
				return err
			}

			debits := h.Debits()
			deposits := h.Deposits()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Transactions: %d\n", h.Len())
			fmt.Fprintf(out, "Debits:       %d (%s)\n", debits.Len(), debits.Total().StringFixed(2))
			fmt.Fprintf(out, "Deposits:     %d (%s)\n", deposits.Len(), deposits.Total().StringFixed(2))
			fmt.Fprintf(out, "Net:          %s\n", h.Total().StringFixed(2))
			return nil
		},
	}

	opts.addFlags(cmd)
	return cmd
}
