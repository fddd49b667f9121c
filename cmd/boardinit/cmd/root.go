package cmd

import (
	"fmt"
	"os"

	"github.com/platinasystems/log"
	"github.com/spf13/cobra"

	"boardinit-go/services/bringup"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "boardinit",
	Short: "RK3568 board bring-up sequencer",
	Long: `Host tooling for the board bring-up sequence: inspect the plan, run it
against a simulated board with optional fault injection, or identify the
PMIC on a live I2C adapter.

Examples:
  boardinit plan                          # Show the step list
  boardinit simulate -v                   # Run bring-up on the simulator
  boardinit simulate --fail i2c --fail-at 3
  boardinit probe --bus 0                 # Read RK809 chip ID from /dev/i2c-0`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Tee(cmd.ErrOrStderr())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// stepLogger forwards bring-up log lines to the platina logger. Info lines
// are dropped unless --verbose is set.
func stepLogger() bringup.Logger {
	return bringup.LoggerFunc(func(level, msg string) {
		if level == "info" && !verbose {
			return
		}
		log.Print(level, "bringup: "+msg)
	})
}
