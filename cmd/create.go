package cmd

import (
	"github.com/nathanhack/ternaryecc/cmd/internal/create/hamming"
	"github.com/nathanhack/ternaryecc/cmd/internal/create/ternary"
	lbternary "github.com/nathanhack/ternaryecc/linearblock/ternary"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new ECC",
	Long:    `create builds a ternary ECC and prints its parameters, generator and parity check matrices. Codes are reproducible from their parameters and seed.`,
}

// createTernaryCmd represents the ternary command
var createTernaryCmd = &cobra.Command{
	Use:     "ternary",
	Aliases: []string{"t", "lb"},
	Short:   "Creates a random systematic ternary linearblock code",
	Long:    `Creates a random systematic ternary linearblock code G=[I|P] after checking the Hamming, Singleton and Gilbert bounds for d=n-k+1.`,
	Args:    cobra.NoArgs,
	Run:     ternary.TernaryRun,
}

// createHammingCmd represents the Hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming",
	Aliases: []string{"h", "ham"},
	Short:   "Creates a ternary Hamming code",
	Long:    `Creates a ternary Hamming code, a perfect code correcting any single symbol error.`,
	Args:    cobra.NoArgs,
	Run:     hamming.HammingRun,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.AddCommand(createTernaryCmd)
	createTernaryCmd.Flags().UintVarP(&ternary.CodewordSize, "codeword", "n", 8, "the number of symbols in the codeword (n > k)")
	createTernaryCmd.Flags().UintVarP(&ternary.MessageSize, "message", "k", 3, "the number of symbols in the message (k > 0)")
	createTernaryCmd.Flags().Uint64VarP(&ternary.Seed, "seed", "s", 0, "the seed for the random parity matrix")
	createTernaryCmd.Flags().UintVarP(&ternary.Attempts, "attempts", "a", lbternary.DefaultMaxAttempts, "the number of parity matrices to try before giving up")
	createTernaryCmd.Flags().BoolVarP(&ternary.Verbose, "verbose", "v", false, "enable verbose info")

	createCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.ParitySymbols, "parity", "p", 2, "the parity within [2, 3], sets codeword size (cs) == (3^parity-1)/2 and message size == cs-parity")
	createHammingCmd.Flags().BoolVarP(&hamming.Verbose, "verbose", "v", false, "enable verbose info")
}
