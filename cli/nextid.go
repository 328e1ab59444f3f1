package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextIDCmd = &cobra.Command{
	Use:   "next-id",
	Short: "Print the id the next task will receive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, err := newTracker()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tr.NextID())
		return nil
	},
}
