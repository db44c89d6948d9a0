package ternary

import (
	"context"
	"errors"
	"fmt"

	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/nathanhack/ternaryecc/linearblock"
	"github.com/sirupsen/logrus"
)

// DefaultMaxAttempts bounds the number of random P blocks drawn by New.
const DefaultMaxAttempts = 100

type options struct {
	source      gf3.SymbolSource
	maxAttempts int
}

type Option func(*options)

// WithSource sets where the random P block symbols come from.
func WithSource(source gf3.SymbolSource) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithSeed is WithSource with a seeded generator.
func WithSeed(seed uint64) Option {
	return WithSource(gf3.NewSeededSymbolSource(seed))
}

// WithMaxAttempts sets how many P blocks are tried before giving up.
func WithMaxAttempts(attempts int) Option {
	return func(o *options) {
		o.maxAttempts = attempts
	}
}

// New creates a ternary code of length n and dimension k with the systematic generator
// G=[I, P] where P is drawn uniformly at random. (n, k) must satisfy
// linearblock.ValidateParameters. Without WithSource or WithSeed the source is seeded with 0.
func New(ctx context.Context, n, k int, opts ...Option) (*linearblock.LinearBlock, error) {
	o := options{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = gf3.NewSeededSymbolSource(0)
	}

	if err := linearblock.ValidateParameters(n, k); err != nil {
		return nil, err
	}

	logrus.Debugf("Creating ternary code n=%v k=%v", n, k)
	var code *linearblock.LinearBlock
	err := retry(ctx, o.maxAttempts, func(attempt int) (bool, error) {
		P := gf3.RandomMatrix(o.source, k, n-k)
		l, err := linearblock.NewSystematic(ctx, P)
		switch {
		case errors.Is(err, linearblock.ErrRankDeficient):
			logrus.Debugf("Attempt %v: generator not full rank", attempt)
			return false, nil
		case err != nil:
			return false, err
		}
		code = l
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Ternary code complete: d=%v", code.ActualDistance)
	return code, nil
}

// retry calls attempt until it reports done, it fails, ctx is cancelled or maxAttempts
// attempts have been made.
func retry(ctx context.Context, maxAttempts int, attempt func(i int) (done bool, err error)) error {
	for i := 0; i < maxAttempts; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		done, err := attempt(i)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return fmt.Errorf("%w: no full rank generator after %v attempts", linearblock.ErrConstructionFailed, maxAttempts)
}
