package gf3

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolArithmetic(t *testing.T) {
	for a := Symbol(0); a < Modulus; a++ {
		require.Equal(t, Symbol(0), a.Add(a.Neg()), "a=%v", a)
		for b := Symbol(0); b < Modulus; b++ {
			require.Equal(t, Reduce(int(a)+int(b)), a.Add(b))
			require.Equal(t, Reduce(int(a)-int(b)), a.Sub(b))
			require.Equal(t, Reduce(int(a)*int(b)), a.Mul(b))
		}
		if a != 0 {
			require.Equal(t, Symbol(1), a.Mul(a.Inv()))
		}
	}
	require.Panics(t, func() { Symbol(0).Inv() })
	require.Equal(t, Symbol(2), Reduce(-1))
	require.Equal(t, Symbol(1), Reduce(7))
}

func TestVector_Validate(t *testing.T) {
	tests := []struct {
		v             Vector
		length        int
		expectedIndex int
	}{
		{Vector{0, 1, 2}, 3, -2},
		{Vector{0, 1}, 3, -1},
		{Vector{0, 3, 1}, 3, 1},
		{Vector{}, 0, -2},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			err := test.v.Validate("message", test.length)
			if test.expectedIndex == -2 {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrAlphabetViolation))
			var ae *AlphabetError
			require.True(t, errors.As(err, &ae))
			require.Equal(t, test.expectedIndex, ae.Index)
			require.Equal(t, "message", ae.Name)
		})
	}
}

func TestParseVector(t *testing.T) {
	v, err := ParseVector("message", " 1 0  2 ")
	require.NoError(t, err)
	require.Equal(t, Vector{1, 0, 2}, v)
	require.Equal(t, "1 0 2", v.String())

	_, err = ParseVector("message", "1 3")
	require.ErrorIs(t, err, ErrAlphabetViolation)

	_, err = ParseVector("message", "1 x")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrAlphabetViolation))
}

func TestVector_Hamming(t *testing.T) {
	a := NewVector(0, 1, 2, 0)
	b := NewVector(0, 2, 2, 1)
	require.Equal(t, 2, a.HammingWeight())
	require.Equal(t, 2, a.HammingDistance(b))
	require.Equal(t, 3, a.HammingDistance(NewVector(0)))
	require.Equal(t, NewVector(0, 0, 1, 1), Add(a, b))
	require.Equal(t, a, Add(Sub(a, b), b))
}

func TestMatrix_Mul(t *testing.T) {
	G := NewMatrix(2, 4, 1, 0, 1, 2, 0, 1, 2, 1)
	H := NewMatrix(2, 4, -1, -2, 1, 0, -2, -1, 0, 1)

	require.True(t, G.Mul(H.T()).IsZero())
	require.Equal(t, NewVector(1, 1, 0, 0), NewVector(1, 1).MulMat(G))
	require.Equal(t, NewVector(0, 0), H.MulVec(NewVector(1, 1, 0, 0)))
	require.Equal(t, NewVector(2, 1, 1, 2), NewVector(2, 1).MulMat(G))
	require.True(t, G.Slice(0, 0, 2, 2).Equals(Identity(2)))
	require.True(t, G.T().T().Equals(G))
	require.True(t, G.Neg().Neg().Equals(G))
}

func TestMatrix_SetMatrix(t *testing.T) {
	m := NewMatrix(2, 5)
	m.SetMatrix(Identity(2), 0, 0)
	m.SetMatrix(NewMatrix(2, 3, 1, 2, 0, 2, 2, 1), 0, 2)
	require.True(t, m.Equals(NewMatrix(2, 5, 1, 0, 1, 2, 0, 0, 1, 2, 2, 1)))
	require.Equal(t, NewVector(2, 2), m.Column(3))
	require.Equal(t, "[1 0 1 2 0]\n[0 1 2 2 1]\n", m.String())
	require.Panics(t, func() { m.SetMatrix(Identity(3), 0, 0) })
}

type constantSource Symbol

func (c constantSource) Symbol() Symbol {
	return Symbol(c)
}

func TestRandomMatrix(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 3},
		{1, 1},
		{2, 5},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			m := RandomMatrix(constantSource(2), test.rows, test.cols)
			rows, cols := m.Dims()
			require.Equal(t, test.rows, rows)
			require.Equal(t, test.cols, cols)
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					require.Equal(t, Symbol(2), m.At(r, c))
				}
			}
		})
	}

	a := RandomMatrix(NewSeededSymbolSource(3), 3, 4)
	b := RandomMatrix(NewSeededSymbolSource(3), 3, 4)
	require.True(t, a.Equals(b))
}

func TestNewMatrixFromRows(t *testing.T) {
	rows := []Vector{NewVector(1, 2), NewVector(0, 1)}
	m := NewMatrixFromRows(rows)
	require.True(t, m.Equals(NewMatrix(2, 2, 1, 2, 0, 1)))

	rows[0][0] = 0
	require.Equal(t, Symbol(1), m.At(0, 0), "rows must be copied")
}
