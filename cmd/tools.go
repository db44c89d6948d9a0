package cmd

import (
	"github.com/nathanhack/ternaryecc/cmd/internal/tools"
	"github.com/nathanhack/ternaryecc/cmd/internal/tools/chart"
	"github.com/nathanhack/ternaryecc/cmd/internal/tools/codec"
	"github.com/nathanhack/ternaryecc/cmd/internal/tools/csv"
	"github.com/nathanhack/ternaryecc/cmd/internal/tools/tsc"
	"github.com/nathanhack/ternaryecc/linearblock/decoding/isd"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsCodecCmd represents the codec command
var toolsCodecCmd = &cobra.Command{
	Use:     "codec",
	Aliases: []string{"cc"},
	Short:   "Encode and decode with a ternary ECC",
	Long:    `Encode messages and decode received words with a ternary ECC. Symbols are written space separated, e.g. "1 0 2".`,
}

// toolsEncodeCmd represents the encode command
var toolsEncodeCmd = &cobra.Command{
	Use:     "encode MESSAGE",
	Aliases: []string{"e"},
	Short:   "Encodes a message into a codeword",
	Long:    `Encodes a message of k symbols into a codeword of n symbols.`,
	Args:    cobra.ExactArgs(1),
	Run:     codec.EncodeRun,
}

// toolsDecodeCmd represents the decode command
var toolsDecodeCmd = &cobra.Command{
	Use:     "decode RECEIVED",
	Aliases: []string{"d"},
	Short:   "Decodes a received word with information set decoding",
	Long:    `Decodes a received word of n symbols, optionally after adding an error vector to it, and reports the message and its distance.`,
	Args:    cobra.ExactArgs(1),
	Run:     codec.DecodeRun,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for linearblock ECCs`,
}

// toolsTscCmd represents the tsc command
var toolsTscCmd = &cobra.Command{
	Use:   "tsc RESULT_JSON",
	Short: "A ternary symmetric channel simulator",
	Long:  `A ternary symmetric channel simulator for linearblock ECCs decoded with information set decoding. Existing results in RESULT_JSON are continued.`,
	Args:  cobra.ExactArgs(1),
	Run:   tsc.TscRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to a HTML bar chart",
	Long:    `Export to a HTML bar chart`,
	Run:     chart.ChartRun,
}

// codeFlags binds the flags selecting a code to params.
func codeFlags(flags *pflag.FlagSet, params *tools.CodeParams) {
	flags.IntVarP(&params.CodewordLength, "codeword", "n", 8, "the number of symbols in the codeword (n > k)")
	flags.IntVarP(&params.MessageLength, "message", "k", 3, "the number of symbols in the message (k > 0)")
	flags.Uint64Var(&params.Seed, "code-seed", 0, "the seed the code was created with")
	flags.IntVar(&params.HammingParity, "hamming", 0, "use the hamming code with this many parity symbols (>=2) instead")
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsCodecCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsCodecCmd.AddCommand(toolsEncodeCmd)
	codeFlags(toolsEncodeCmd.Flags(), &codec.Code)

	toolsCodecCmd.AddCommand(toolsDecodeCmd)
	codeFlags(toolsDecodeCmd.Flags(), &codec.Code)
	toolsDecodeCmd.Flags().StringVarP(&codec.Error, "error", "e", "", "error vector added to RECEIVED before decoding, e.g. \"0 0 2 0\"")
	toolsDecodeCmd.Flags().UintVarP(&codec.DecoderTrials, "trials", "t", isd.DefaultTrials, "the number of information sets to try")
	toolsDecodeCmd.Flags().Uint64VarP(&codec.DecoderSeed, "seed", "s", 0, "the seed for choosing information sets")
	toolsDecodeCmd.Flags().UintVar(&codec.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsChansimCmd.AddCommand(toolsTscCmd)
	codeFlags(toolsTscCmd.Flags(), &tsc.Code)
	toolsTscCmd.Flags().UintVarP(&tsc.Trials, "trials", "t", 10_000, "the number of trials per step")
	toolsTscCmd.Flags().Float64SliceVarP(&tsc.ErrorProbability, "probability", "p", []float64{0.05, 0.10, 0.15, 0.20, 0.25, 0.30}, "probability of a symbol error to test [0, 1]")
	toolsTscCmd.Flags().UintVar(&tsc.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsTscCmd.Flags().UintVarP(&tsc.DecoderTrials, "iters", "i", isd.DefaultTrials, "the number of information sets the decoder tries per codeword")
	toolsTscCmd.Flags().Uint64VarP(&tsc.Seed, "seed", "s", 0, "the seed for messages, channel errors and decoding")
	toolsTscCmd.Flags().StringVarP(&tsc.ConfigFile, "config", "c", "", "TOML simulation profile; replaces the code and simulation flags")
	toolsTscCmd.Flags().BoolVarP(&tsc.Verbose, "verbose", "v", false, "enable verbose info")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.MessageError, "message", "m", false, "outputs the MessageError instead of CodewordError or ParityError")
	toolsCSVCmd.Flags().BoolVarP(&csv.ParityError, "parity", "p", false, "outputs the ParityError instead of CodewordError or MessageError")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().BoolVarP(&chart.MessageError, "message", "m", false, "charts the MessageError instead of CodewordError or ParityError")
	toolsChartCmd.Flags().BoolVarP(&chart.ParityError, "parity", "p", false, "charts the ParityError instead of CodewordError or MessageError")
}
