package gf3

import (
	"golang.org/x/exp/rand"
)

// SymbolSource draws independent uniform symbols from {0,1,2}.
type SymbolSource interface {
	Symbol() Symbol
}

// RandSource is a SymbolSource backed by a seedable generator.
type RandSource struct {
	rnd *rand.Rand
}

// NewSymbolSource creates a SymbolSource over src.
func NewSymbolSource(src rand.Source) *RandSource {
	return &RandSource{rnd: rand.New(src)}
}

// NewSeededSymbolSource creates a SymbolSource whose sequence is fixed by seed.
func NewSeededSymbolSource(seed uint64) *RandSource {
	return NewSymbolSource(rand.NewSource(seed))
}

func (s *RandSource) Symbol() Symbol {
	return Symbol(s.rnd.Intn(Modulus))
}

// RandomVector draws n symbols from src.
func RandomVector(src SymbolSource, n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = src.Symbol()
	}
	return v
}

// RandomMatrix draws a rows x cols matrix of symbols from src, row by row.
func RandomMatrix(src SymbolSource, rows, cols int) *Matrix {
	data := make([]Vector, rows)
	for r := range data {
		data[r] = RandomVector(src, cols)
	}
	if rows == 0 {
		return NewMatrix(0, cols)
	}
	return NewMatrixFromRows(data)
}
