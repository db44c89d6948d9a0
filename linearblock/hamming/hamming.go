package hamming

import (
	"context"
	"fmt"

	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/nathanhack/ternaryecc/linearblock"
	"github.com/nathanhack/ternaryecc/linearblock/internal"
	"github.com/sirupsen/logrus"
)

// MaxParitySymbols is the largest hamming code New builds. Four parity symbols give
// a [40, 36] code whose 3^36 codewords can not be enumerated.
const MaxParitySymbols = 3

// New creates the systematic ternary hamming code with paritySymbols number of parity symbols.
// The code has length n=(3^paritySymbols-1)/2, dimension n-paritySymbols and minimum
// distance 3, so it corrects any single symbol error. It is perfect: the radius one
// balls around its codewords cover the whole space.
func New(ctx context.Context, paritySymbols int) (*linearblock.LinearBlock, error) {
	if paritySymbols < 2 {
		panic("hamming codes require >=2 parity symbols")
	}
	if paritySymbols > MaxParitySymbols {
		return nil, fmt.Errorf("%w: hamming codes with %v parity symbols are too large, at most %v are supported", linearblock.ErrInvalidParameters, paritySymbols, MaxParitySymbols)
	}
	size := 1
	for i := 0; i < paritySymbols; i++ {
		size *= gf3.Modulus
	}
	n := (size - 1) / 2
	H := gf3.NewMatrix(paritySymbols, n)

	//To make Hamming codes we make the columns one representative of every
	// one dimensional subspace of GF(3)^r: the nonzero vectors whose leading
	// nonzero symbol is 1
	col := 0
	for i := 1; i < size; i++ {
		vec := make(gf3.Vector, paritySymbols)
		x := i
		for j := paritySymbols - 1; j >= 0; j-- {
			vec[j] = gf3.Symbol(x % gf3.Modulus)
			x /= gf3.Modulus
		}
		if leading(vec) != 1 {
			continue
		}
		H.SetColumn(col, vec)
		col++
	}

	logrus.Debugf("Creating generator matrix from H matrix")
	A, _ := internal.ExtractAFromH(ctx, H)
	if A == nil {
		return nil, fmt.Errorf("unable to create generator for H matrix")
	}

	// H is now [A, I] with its columns reordered, which is [-P^T, I] for P = -A^T
	return linearblock.NewSystematic(ctx, A.T().Neg())
}

func leading(v gf3.Vector) gf3.Symbol {
	for _, s := range v {
		if s != 0 {
			return s
		}
	}
	return 0
}
