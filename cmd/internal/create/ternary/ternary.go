package ternary

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanhack/ternaryecc/linearblock/ternary"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	CodewordSize uint
	MessageSize  uint
	Seed         uint64
	Attempts     uint
	Verbose      bool
)

var TernaryRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	code, err := ternary.New(ctx, int(CodewordSize), int(MessageSize),
		ternary.WithSeed(Seed), ternary.WithMaxAttempts(int(Attempts)))
	if err != nil {
		fmt.Println("Unable to create ternary code: ", err)
		return
	}

	fmt.Printf("Seed: %v\n", Seed)
	fmt.Print(code)
}
