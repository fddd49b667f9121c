package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardinit-go/services/bringup"
	"boardinit-go/services/bringup/sim"
)

var (
	failKind  string
	failAt    int
	chipName  uint16
	showTrace bool
)

// Fault targets accepted by --fail.
var failKinds = map[string]sim.EventKind{
	"domain":   sim.EvDomain,
	"i2c":      sim.EvI2CWrite,
	"i2c-read": sim.EvI2CRead,
	"phy":      sim.EvPhy,
	"pin":      sim.EvPinMux,
	"gpio":     sim.EvPinWrite,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run bring-up against a simulated board",
	Long: `Run the full bring-up sequence against an in-memory board and report
the resulting status code. Faults can be injected into one capability to
exercise the error paths.

Examples:
  boardinit simulate --trace               # Print every hardware access
  boardinit simulate --fail phy            # First lane select fails
  boardinit simulate --chip 0x808          # PMIC answers with a foreign ID`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&failKind, "fail", "",
		"inject a fault into: domain, i2c (writes), i2c-read, phy, pin, gpio")
	simulateCmd.Flags().IntVar(&failAt, "fail-at", 1,
		"fail the Nth access of the --fail kind (1-based)")
	simulateCmd.Flags().Uint16Var(&chipName, "chip", 0x809,
		"chip name the simulated PMIC reports")
	simulateCmd.Flags().BoolVarP(&showTrace, "trace", "t", false,
		"print the hardware access trace")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	board := sim.New(
		sim.WithHiWord(bringup.MaskedRegisters()...),
		sim.WithPMIC(0x20, byte(chipName>>4), byte(chipName&0xF)<<4|0xF),
	)
	if failKind != "" {
		kind, ok := failKinds[failKind]
		if !ok {
			return fmt.Errorf("unknown --fail target %q", failKind)
		}
		if failAt < 1 {
			return fmt.Errorf("--fail-at must be at least 1, got %d", failAt)
		}
		board.FailOn(kind, failAt, nil)
	}

	err := bringup.Run(bringup.Platform{
		MMIO:    board,
		I2C:     board,
		Pins:    board,
		PHY:     board,
		Domains: board,
		Log:     stepLogger(),
	})

	out := cmd.OutOrStdout()
	if showTrace {
		for i, ev := range board.Trace() {
			fmt.Fprintf(out, "%4d %s\n", i+1, ev)
		}
	}
	fmt.Fprintf(out, "status: %s\n", bringup.Status(err))
	if err != nil {
		return fmt.Errorf("bring-up failed: %w", err)
	}
	return nil
}
