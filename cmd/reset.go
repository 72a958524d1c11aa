package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all tracked progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("this deletes all tracked progress; re-run with --yes to confirm")
		}

		prog, err := openProgress()
		if err != nil {
			return err
		}
		defer prog.Close()

		if err := withProgressLock(func() error {
			return prog.Reset(cmd.Context())
		}); err != nil {
			return err
		}

		fmt.Println("Progress cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
