package tsc

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"runtime"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/ternaryecc/benchmarking"
	"github.com/nathanhack/ternaryecc/cmd/internal/config"
	"github.com/nathanhack/ternaryecc/cmd/internal/tools"
	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/nathanhack/ternaryecc/linearblock"
	"github.com/nathanhack/ternaryecc/linearblock/decoding/isd"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	DecoderTrials    uint
	Seed             uint64
	Code             tools.CodeParams
	ConfigFile       string
	Verbose          bool
)

// each trial draws from its own streams so results do not depend on scheduling
const (
	messageStream = iota
	channelStream
	decoderStream
	streams
)

func trialSource(seed uint64, trial, stream int) rand.Source {
	return rand.NewSource(seed + uint64(trial)*streams + uint64(stream))
}

// RunTSC simulates the ternary symmetric channel with symbol error probability
// errorProbability until previousStats has seen trials trials.
func RunTSC(ctx context.Context,
	l *linearblock.LinearBlock,
	errorProbability float64, trials, threads int, seed uint64,
	correctionAlg benchmarking.TernarySymmetricChannelCorrection,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) gf3.Vector {
		return benchmarking.RandomMessage(rand.New(trialSource(seed, trial, messageStream)), l.MessageLength())
	}

	encode := func(message gf3.Vector) (codeword gf3.Vector) {
		return l.MustEncode(message)
	}

	channel := func(trial int, originalCodeword gf3.Vector) (erroredCodeword gf3.Vector) {
		return benchmarking.RandomSymbolErrors(rand.New(trialSource(seed, trial, channelStream)), originalCodeword, errorProbability)
	}

	return benchmarking.BenchmarkTSCContinueStats(ctx, trials, threads, createMessage, encode, channel, correctionAlg, benchmarking.SymbolErrorRates, checkpoints, previousStats, showProgress)
}

// DecoderCorrection repairs a received word with the information set decoder. Words
// the decoder finds no candidate for are left as received.
func DecoderCorrection(ctx context.Context, l *linearblock.LinearBlock, decoderTrials int, seed uint64) benchmarking.TernarySymmetricChannelCorrection {
	return func(trial int, originalCodeword, channelInducedCodeword gf3.Vector) (fixedChannelInducedCodeword gf3.Vector) {
		sampler := isd.NewSampler(trialSource(seed, trial, decoderStream))
		result, err := isd.Decode(ctx, l, channelInducedCodeword, isd.WithTrials(decoderTrials), isd.WithSampler(sampler), isd.WithThreads(1))
		if err != nil || !result.Found {
			return channelInducedCodeword
		}
		return l.MustEncode(result.Message)
	}
}

// applyConfig replaces the flag values with the profile's.
func applyConfig(cfg *config.Config) {
	Code = tools.CodeParams{
		CodewordLength: cfg.Code.CodewordLength,
		MessageLength:  cfg.Code.MessageLength,
		Seed:           cfg.Code.Seed,
		HammingParity:  cfg.Code.HammingParity,
	}
	Trials = uint(cfg.Simulation.Trials)
	ErrorProbability = cfg.Simulation.Probabilities
	Threads = uint(cfg.Simulation.Threads)
	DecoderTrials = uint(cfg.Simulation.DecoderTrials)
	Seed = cfg.Simulation.Seed
}

var TscRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if ConfigFile != "" {
		cfg, err := config.LoadFile(ConfigFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		applyConfig(cfg)
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

	//first get the ECC to use
	ecc, err := tools.CreateLinearBlockECC(ctx, Code)
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := loadOrCreate(args[0], ecc)
	if err != nil {
		fmt.Println(err)
		return
	}

	runSimulation(ctx, data, ecc, args[0], true)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

func typeInfo() string {
	t := reflect.TypeOf(isd.Decoder{})
	return fmt.Sprintf("TSC:%v/%v", t.PkgPath(), t.Name())
}

// loadOrCreate reads the RESULT_JSON if it exists and validates we're running it against the right thing.
func loadOrCreate(filepath string, ecc *linearblock.LinearBlock) (*tools.SimulationStats, error) {
	data, err := tools.LoadResults(filepath)
	if err != nil {
		return nil, err
	}

	//if data is nil then we create it
	if data == nil {
		return &tools.SimulationStats{
			TypeInfo: typeInfo(),
			ECCInfo:  tools.Md5Sum(ecc.G),
			Stats:    make(map[float64]benchmarking.Stats),
		}, nil
	}

	if data.TypeInfo != typeInfo() {
		return nil, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo(), data.TypeInfo)
	}
	if data.ECCInfo != tools.Md5Sum(ecc.G) {
		return nil, fmt.Errorf("results loaded do not match the ECC %v", Code)
	}
	if data.Stats == nil {
		data.Stats = make(map[float64]benchmarking.Stats)
	}
	return data, nil
}

func runSimulation(ctx context.Context, data *tools.SimulationStats, ecc *linearblock.LinearBlock, outputFilename string, showProgress bool) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	correctionAlg := DecoderCorrection(ctx, ecc, int(DecoderTrials), Seed)

	numberOfThread := int(Threads)
	if numberOfThread == 0 {
		numberOfThread = runtime.NumCPU()
	}

	trialsPerIter := numberOfThread * 10
	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(int(Trials) * len(ErrorProbability))
	}
	logrus.Debugf("Simulating %v over %v trials per probability", Code, Trials)

trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		target := min(t, int(Trials))
		for _, p := range ErrorProbability {
			select {
			case <-ctx.Done():
				break trialLoops
			default:
			}

			probability := p
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[probability] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := tools.SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}

			before := data.Stats[p].ChannelCodewordError.Count
			stats := RunTSC(ctx, ecc, p, target, numberOfThread, Seed, correctionAlg, data.Stats[p], checkpoint, false)
			checkpointMux.Lock()
			data.Stats[p] = stats
			checkpointMux.Unlock()
			if showProgress {
				bar.Add(stats.ChannelCodewordError.Count - before)
			}
		}
		if target >= int(Trials) {
			break
		}
	}
	if showProgress {
		bar.Finish()
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
