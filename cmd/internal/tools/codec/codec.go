package codec

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/ternaryecc/cmd/internal/tools"
	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/nathanhack/ternaryecc/linearblock/decoding/isd"
	"github.com/spf13/cobra"
)

var (
	Code          tools.CodeParams
	Error         string
	DecoderTrials uint
	DecoderSeed   uint64
	Threads       uint
)

var EncodeRun = func(cmd *cobra.Command, args []string) {
	if err := encode(context.Background(), os.Stdout, args[0]); err != nil {
		fmt.Println(err)
	}
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	if err := decode(context.Background(), os.Stdout, args[0]); err != nil {
		fmt.Println(err)
	}
}

func encode(ctx context.Context, w io.Writer, text string) error {
	ecc, err := tools.CreateLinearBlockECC(ctx, Code)
	if err != nil {
		return err
	}

	message, err := gf3.ParseVector("message", text)
	if err != nil {
		return err
	}

	codeword, err := ecc.Encode(message)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, codeword)
	return nil
}

func decode(ctx context.Context, w io.Writer, text string) error {
	ecc, err := tools.CreateLinearBlockECC(ctx, Code)
	if err != nil {
		return err
	}

	received, err := gf3.ParseVector("received", text)
	if err != nil {
		return err
	}

	if Error != "" {
		errorVector, err := gf3.ParseVector("error", Error)
		if err != nil {
			return err
		}
		if err := errorVector.Validate("error", received.Len()); err != nil {
			return err
		}
		received = gf3.Add(received, errorVector)
		fmt.Fprintf(w, "Received: %v\n", received)
	}

	result, err := isd.Decode(ctx, ecc, received,
		isd.WithTrials(int(DecoderTrials)), isd.WithSeed(DecoderSeed), isd.WithThreads(int(Threads)))
	if err != nil {
		return err
	}

	if !result.Found {
		fmt.Fprintln(w, "Decoding failed: no codeword found")
		return nil
	}
	fmt.Fprintf(w, "Message: %v\n", result.Message)
	fmt.Fprintf(w, "Distance: %v\n", result.Distance)
	return nil
}
