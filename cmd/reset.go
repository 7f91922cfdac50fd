package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset template statistics",
	Long:  "Clear the aggregated per-template statistics. The answer history and vocabulary progress are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.perf.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Template statistics cleared.")
		return nil
	},
}
