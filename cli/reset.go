package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the save file and restart id allocation at 0",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, err := newTracker()
		if err != nil {
			return err
		}

		if err := tr.Reset(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "save data cleared")
		return nil
	},
}
