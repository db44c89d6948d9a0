package linearblock

import (
	"strconv"
	"testing"

	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/stretchr/testify/require"
)

func TestMinimumDistance(t *testing.T) {
	tests := []struct {
		G        *gf3.Matrix
		expected int
	}{
		{gf3.NewMatrix(2, 4, 1, 0, 1, 2, 0, 1, 2, 1), 2},
		{gf3.NewMatrix(2, 4, 1, 0, 1, 1, 0, 1, 1, 2), 3},
		{gf3.NewMatrix(1, 5, 1, 1, 1, 1, 1), 5},
		{gf3.NewMatrix(1, 3, 2, 0, 0), 1},
		// rank deficient, the only nonzero codewords come from one row
		{gf3.NewMatrix(2, 3, 1, 1, 0, 2, 2, 0), 2},
		// no nonzero codeword at all
		{gf3.NewMatrix(1, 3), 3},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Equal(t, test.expected, MinimumDistance(test.G))
		})
	}
}

func TestCodebook(t *testing.T) {
	G := gf3.NewMatrix(2, 4, 1, 0, 1, 2, 0, 1, 2, 1)
	cb := NewCodebook(G)
	require.Equal(t, 9, cb.Len())

	// lexicographic message order
	require.Equal(t, gf3.NewVector(0, 0), cb.Message(0))
	require.Equal(t, gf3.NewVector(0, 1), cb.Message(1))
	require.Equal(t, gf3.NewVector(1, 0), cb.Message(3))
	require.Equal(t, gf3.NewVector(2, 2), cb.Message(8))

	for i := 0; i < cb.Len(); i++ {
		message := cb.Message(i)
		if i > 0 {
			require.Equal(t, 1, compareMessages(cb.Message(i), cb.Message(i-1)), "messages must be in lexicographic order")
		}
		require.Equal(t, message.MulMat(G), cb.Codeword(i))
	}
	require.True(t, cb.Codeword(0).IsZero())
}

func compareMessages(a, b gf3.Vector) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}
