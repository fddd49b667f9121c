package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardinit-go/services/bringup"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the bring-up step list",
	Long: `Print each bring-up step in execution order with the capabilities it
uses, the steps it must follow and its failure policy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "board: %s\n%s", bringup.BoardName(), bringup.BoardPlan().Describe())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
