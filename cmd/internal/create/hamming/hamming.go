package hamming

import (
	"context"
	"fmt"

	"github.com/nathanhack/ternaryecc/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ParitySymbols uint
	Verbose       bool
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if ParitySymbols < 2 || ParitySymbols > hamming.MaxParitySymbols {
		fmt.Printf("parity must be within [2, %v]\n", hamming.MaxParitySymbols)
		return
	}

	code, err := hamming.New(context.Background(), int(ParitySymbols))
	if err != nil {
		fmt.Println("Unable to create hamming code: ", err)
		return
	}
	fmt.Print(code)
}
