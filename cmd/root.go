package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ternaryecc",
	Short: "Ternary linear block error correcting codes",
	Long: `Creates ternary (GF(3)) linear block codes, encodes and decodes with them,
and simulates them over a ternary symmetric channel.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
