//go:build linux

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardinit-go/drivers/rk809"
	"boardinit-go/services/bringup/linuxhost"
)

var (
	probeBus  int
	probeAddr uint16
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Identify the PMIC on a Linux I2C adapter",
	Long: `Read the RK809 chip identification registers through /dev/i2c-N and
check them against the expected chip. Nothing is written to the PMIC.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev := rk809.New(linuxhost.NewI2C(probeBus), rk809.Config{Address: probeAddr})
		id, err := dev.Identify()
		if err != nil {
			return fmt.Errorf("i2c-%d addr 0x%02x: %w", probeBus, probeAddr, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "i2c-%d addr 0x%02x: %s\n", probeBus, dev.Address(), id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().IntVarP(&probeBus, "bus", "b", 0, "I2C adapter index")
	probeCmd.Flags().Uint16VarP(&probeAddr, "addr", "a", rk809.AddressDefault, "PMIC 7-bit address")
}
