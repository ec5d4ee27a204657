package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the scheduled chat toggle once and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		msg, err := a.Toggler.RunSchedule(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}
