package gf3

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGaussianJordanElimination(t *testing.T) {
	tests := []struct {
		input         *Matrix
		expected      *Matrix
		expectedOrder []int
	}{
		{ //already systematic
			NewMatrix(2, 4, 1, 0, 1, 2, 0, 1, 2, 1),
			NewMatrix(2, 4, 1, 0, 1, 2, 0, 1, 2, 1),
			[]int{0, 1, 2, 3},
		},
		{ //row swap and scaling
			NewMatrix(2, 3, 0, 2, 1, 2, 0, 0),
			NewMatrix(2, 3, 1, 0, 0, 0, 1, 2),
			[]int{0, 1, 2},
		},
		{ //needs a column swap
			NewMatrix(2, 3, 1, 1, 0, 2, 2, 1),
			NewMatrix(2, 3, 1, 0, 1, 0, 1, 0),
			[]int{0, 2, 1},
		},
		{ //second row is twice the first
			NewMatrix(2, 3, 1, 2, 0, 2, 1, 0),
			nil,
			nil,
		},
		{ //more rows than columns
			NewMatrix(3, 2, 1, 0, 0, 1, 1, 1),
			nil,
			nil,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, order := GaussianJordanElimination(context.Background(), test.input)

			if test.expected == nil {
				require.Nil(t, actual)
				require.Nil(t, order)
				return
			}
			require.True(t, test.expected.Equals(actual), "expected \n%v\n but found \n%v\n", test.expected, actual)
			require.Equal(t, test.expectedOrder, order)
		})
	}
}

func TestGaussianJordanElimination_RowSpace(t *testing.T) {
	src := NewSeededSymbolSource(7)
	for i := 0; i < 50; i++ {
		M := RandomMatrix(src, 3, 6)
		reduced, order := GaussianJordanElimination(context.Background(), M)
		if reduced == nil {
			require.Less(t, CalculateRank(context.Background(), M), 3)
			continue
		}

		//every row of the permuted input must lie in the row space of the reduced matrix,
		// and since the left block is I that combination is the row's own prefix
		permuted := M.Columns(order)
		for r := 0; r < 3; r++ {
			row := permuted.Row(r)
			require.True(t, row.Equals(row[:3].MulMat(reduced)), "row %v of %v", r, permuted)
		}
	}
}

func TestCalculateRank(t *testing.T) {
	tests := []struct {
		input    *Matrix
		expected int
	}{
		{Identity(3), 3},
		{NewMatrix(2, 3), 0},
		{NewMatrix(2, 3, 1, 2, 0, 2, 1, 0), 1},
		{NewMatrix(3, 2, 1, 0, 0, 1, 1, 1), 2},
		{NewMatrix(2, 2, 1, 2, 2, 1), 1}, // full rank over the reals, det == -3
		{NewMatrix(2, 2, 1, 1, 1, 2), 2},
		{NewMatrix(3, 4, 0, 0, 1, 1, 0, 0, 2, 2, 1, 1, 0, 0), 2},
		{nil, -1},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, test.expected, CalculateRank(context.Background(), test.input))
		})
	}
}

func TestCalculateRank_DoesNotModifyInput(t *testing.T) {
	M := NewMatrix(2, 3, 0, 2, 1, 2, 0, 0)
	before := M.Copy()
	CalculateRank(context.Background(), M)
	require.True(t, before.Equals(M))
}

func TestCalculateRank_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, -1, CalculateRank(ctx, Identity(3)))
}
