// Package isd decodes ternary linear block codes with randomized information set decoding.
//
// Each trial guesses k positions of the received word that are free of errors (an
// information set), keeps the codewords agreeing with the received word on those
// positions, and measures their distance to the received word. The closest codeword
// over all trials wins. This is a heuristic: when every trial's information set
// touches an error the transmitted codeword is not seen, even if it is within the
// code's correctable radius.
package isd

import (
	"context"
	"math"

	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/nathanhack/ternaryecc/linearblock"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

const (
	DefaultTrials = 100

	// Infinity is the distance reported when no candidate was found.
	Infinity = math.MaxInt
)

// Sampler picks information sets.
type Sampler interface {
	// Sample fills dst with len(dst) distinct positions drawn uniformly from [0, n).
	Sample(dst []int, n int)
}

// RandSampler samples without replacement from a seedable source.
type RandSampler struct {
	src rand.Source
}

func NewSampler(src rand.Source) *RandSampler {
	return &RandSampler{src: src}
}

func NewSeededSampler(seed uint64) *RandSampler {
	return NewSampler(rand.NewSource(seed))
}

func (s *RandSampler) Sample(dst []int, n int) {
	sampleuv.WithoutReplacement(dst, n, s.src)
}

// Result of a decode. When Found is false Message is nil and Distance is Infinity.
type Result struct {
	Message  gf3.Vector
	Distance int
	Found    bool
}

func notFound() Result {
	return Result{Distance: Infinity}
}

// Decoder decodes received words for one code. The code may be shared between
// decoders but a Decoder is not safe for concurrent use since its Sampler is not.
type Decoder struct {
	Code    *linearblock.LinearBlock
	Trials  int     // number of information sets tried, <=0 means DefaultTrials
	Sampler Sampler // nil means a sampler seeded with 0 for every call
	Threads int     // workers evaluating trials, 0 means use the number of cpus
}

type Option func(*Decoder)

func WithTrials(trials int) Option {
	return func(d *Decoder) {
		d.Trials = trials
	}
}

func WithSampler(sampler Sampler) Option {
	return func(d *Decoder) {
		d.Sampler = sampler
	}
}

func WithSeed(seed uint64) Option {
	return WithSampler(NewSeededSampler(seed))
}

func WithThreads(threads int) Option {
	return func(d *Decoder) {
		d.Threads = threads
	}
}

// New creates a Decoder for code.
func New(code *linearblock.LinearBlock, opts ...Option) *Decoder {
	d := &Decoder{
		Code:   code,
		Trials: DefaultTrials,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode is New(code, opts...).Decode(ctx, received).
func Decode(ctx context.Context, code *linearblock.LinearBlock, received gf3.Vector, opts ...Option) (Result, error) {
	return New(code, opts...).Decode(ctx, received)
}

type candidate struct {
	index    int // message index in the codebook, -1 for none
	distance int
}

var noCandidate = candidate{index: -1, distance: Infinity}

// better orders candidates by distance then by message (lexicographically), so the
// final choice does not depend on the order trials finish in.
func (c candidate) better(o candidate) bool {
	if c.index == -1 {
		return false
	}
	if o.index == -1 {
		return true
	}
	if c.distance != o.distance {
		return c.distance < o.distance
	}
	return c.index < o.index
}

// Decode returns the message whose codeword is closest to received among those seen
// in the trials. An invalid received word returns an *gf3.AlphabetError. Finding no
// candidate is not an error; the Result has Found == false.
func (d *Decoder) Decode(ctx context.Context, received gf3.Vector) (Result, error) {
	code := d.Code
	k, n := code.MessageLength(), code.CodewordLength()
	if err := received.Validate("received", n); err != nil {
		return notFound(), err
	}

	//a codeword is its own nearest codeword
	if code.H.MulVec(received).IsZero() {
		return Result{Message: received[:k].Copy(), Distance: 0, Found: true}, nil
	}

	trials := d.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	sampler := d.Sampler
	if sampler == nil {
		sampler = NewSeededSampler(0)
	}

	// the information sets are drawn up front so the random stream
	// does not depend on how the trials are scheduled
	sets := make([][]int, trials)
	for i := range sets {
		sets[i] = make([]int, k)
		sampler.Sample(sets[i], n)
	}

	codebook := code.Codebook()
	results := make([]candidate, trials)
	for i := range results {
		results[i] = noCandidate
	}

	pool := threadpool.New(ctx, d.Threads)
	for i := range sets {
		index := i
		pool.Add(func() {
			results[index] = bestCandidate(codebook, received, sets[index])
		})
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return notFound(), err
	}

	best := noCandidate
	for _, c := range results {
		if c.better(best) {
			best = c
		}
	}

	if best.index == -1 {
		logrus.Debugf("No candidate found in %v trials", trials)
		return notFound(), nil
	}

	logrus.Debugf("Decoded to message %v at distance %v", best.index, best.distance)
	return Result{
		Message:  codebook.Message(best.index),
		Distance: best.distance,
		Found:    true,
	}, nil
}

// bestCandidate returns the closest codeword to received among those agreeing with it on positions.
func bestCandidate(codebook *linearblock.Codebook, received gf3.Vector, positions []int) candidate {
	best := noCandidate
codewords:
	for i := 0; i < codebook.Len(); i++ {
		cw := codebook.Codeword(i)
		for _, p := range positions {
			if cw[p] != received[p] {
				continue codewords
			}
		}

		c := candidate{index: i, distance: cw.HammingDistance(received)}
		if c.better(best) {
			best = c
		}
	}
	return best
}
