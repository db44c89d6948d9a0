package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/nathanhack/threadpool"
)

type Stats struct {
	ChannelCodewordError avgstd.AvgStd // probability of a symbol error after channel errors are fixed
	ChannelMessageError  avgstd.AvgStd // probability of a symbol error after channel errors are fixed
	ChannelParityError   avgstd.AvgStd // probability of a symbol error after channel errors are fixed
}

func (s Stats) String() string {
	return fmt.Sprintf("{Codeword:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f), Parity:%0.02f(+/-%0.02f)}",
		s.ChannelCodewordError.Mean, stddev(s.ChannelCodewordError),
		s.ChannelMessageError.Mean, stddev(s.ChannelMessageError),
		s.ChannelParityError.Mean, stddev(s.ChannelParityError),
	)
}

func stddev(a avgstd.AvgStd) float64 {
	if a.Count < 2 {
		return 0
	}
	return math.Sqrt(a.SampledVariance())
}

type Checkpoints func(updatedStats Stats)

type MessageConstructor func(trial int) (message gf3.Vector)

//specific to the ternary symmetric channel, the trial number lets each trial seed its own randomness
type TernarySymmetricChannelEncoder func(message gf3.Vector) (codeword gf3.Vector)
type TernarySymmetricChannel func(trial int, codeword gf3.Vector) (channelInducedCodeword gf3.Vector)
type TernarySymmetricChannelCorrection func(trial int, originalCodeword, channelInducedCodeword gf3.Vector) (fixedChannelInducedCodeword gf3.Vector)
type TernarySymmetricChannelMetrics func(originalMessage, originalCodeword, fixedChannelInducedCodeword gf3.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64)

func BenchmarkTSC(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode TernarySymmetricChannelEncoder,
	channel TernarySymmetricChannel,
	codewordRepair TernarySymmetricChannelCorrection,
	metrics TernarySymmetricChannelMetrics,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkTSCContinueStats(ctx, trials, threads, createMessage, encode, channel, codewordRepair, metrics, checkpoints, Stats{}, showProgress)
}

// BenchmarkTSCContinueStats runs the trials previousStats has not seen yet, trials
// previousStats.ChannelCodewordError.Count through trials-1.
func BenchmarkTSCContinueStats(ctx context.Context,
	trials int, threads int,
	createMessage MessageConstructor,
	encode TernarySymmetricChannelEncoder,
	channel TernarySymmetricChannel,
	codewordRepair TernarySymmetricChannelCorrection,
	metrics TernarySymmetricChannelMetrics,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.ChannelCodewordError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.New(ctx, threads)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword := encode(message)

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(i, codeword)

		// repair the codeword (if possible)
		repaired := codewordRepair(i, codeword, channelInducedCodeword)

		// get metrics
		percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors := metrics(message, codeword, repaired)

		statsMux.Lock()
		previousStats.ChannelCodewordError.Update(percentFixedCodewordErrors)
		previousStats.ChannelMessageError.Update(percentFixedMessageErrors)
		previousStats.ChannelParityError.Update(percentFixedParityErrors)
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.ChannelCodewordError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

// SymbolErrorRates compares the repaired codeword against what was sent. The
// message of a systematic codeword is its first len(originalMessage) symbols.
func SymbolErrorRates(originalMessage, originalCodeword, fixedChannelInducedCodeword gf3.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
	k := len(originalMessage)
	n := len(originalCodeword)

	codewordErrors := originalCodeword.HammingDistance(fixedChannelInducedCodeword)
	messageErrors := originalMessage.HammingDistance(fixedChannelInducedCodeword[:k])
	parityErrors := codewordErrors - messageErrors

	percentFixedCodewordErrors = float64(codewordErrors) / float64(n)
	percentFixedMessageErrors = float64(messageErrors) / float64(k)
	percentFixedParityErrors = float64(parityErrors) / float64(n-k)
	return
}
