package gf3

import (
	"context"

	"github.com/sirupsen/logrus"
)

func swapColOrder(i, j int, colIndices []int) {
	x := len(colIndices)
	if 0 <= i && i < x && 0 <= j && j < x {
		colIndices[i], colIndices[j] = colIndices[j], colIndices[i]
	}
}

// pivotRow returns the first row >= fromRow with a nonzero symbol in col, or -1.
func pivotRow(M *Matrix, fromRow, col int) int {
	for r := fromRow; r < M.rows; r++ {
		if M.data[r][col] != 0 {
			return r
		}
	}
	return -1
}

// pivotSwapReturn finds a pivot row for the rowIndex'th column. When that column
// has no usable pivot a later column that does is swapped into its place.
func pivotSwapReturn(M *Matrix, rowIndex int, columnSwapHistory []int) int {
	if p := pivotRow(M, rowIndex, rowIndex); p != -1 {
		return p
	}
	for c := rowIndex + 1; c < M.cols; c++ {
		if p := pivotRow(M, rowIndex, c); p != -1 {
			M.SwapColumns(rowIndex, c)
			swapColOrder(rowIndex, c, columnSwapHistory)
			return p
		}
	}
	//we get here when there aren't any more non zero rows
	return -1
}

// GaussianJordanElimination reduces M to the form [I, A] using row operations and
// column swaps. The second return value records the column order of the result
// (result column i is column order[i] of M). If the rows of M are not linearly
// independent nil, nil is returned.
func GaussianJordanElimination(ctx context.Context, M *Matrix) (*Matrix, []int) {
	rows, cols := M.Dims()
	result := M.Copy()
	columnSwapHistory := make([]int, cols)
	for c := 0; c < cols; c++ {
		columnSwapHistory[c] = c
	}

	if cols < rows {
		return nil, nil
	}

	//to fail fast we first do the lower triangle then do the upper
	if lowerTriangular(ctx, rows, result, columnSwapHistory) != rows {
		logrus.Debugf("All rows not linearly independent")
		return nil, nil
	}

	if !upperTriangular(ctx, rows, result) {
		return nil, nil
	}

	logrus.Debugf("Gaussian-Jordan Elimination complete")
	return result, columnSwapHistory
}

// CalculateRank returns the rank of M using exact arithmetic mod 3.
// It returns -1 if M is nil or ctx is cancelled.
func CalculateRank(ctx context.Context, M *Matrix) int {
	if M == nil {
		return -1
	}
	rows, cols := M.Dims()
	min := rows
	if cols < rows {
		min = cols
	}

	columnSwapHistory := make([]int, cols)
	return lowerTriangular(ctx, min, M.Copy(), columnSwapHistory)
}

func lowerTriangular(ctx context.Context, rows int, M *Matrix, columnSwapHistory []int) int {
	for r := 0; r < rows; r++ {
		select {
		case <-ctx.Done():
			return -1
		default:
		}

		pivot := pivotSwapReturn(M, r, columnSwapHistory)
		if pivot == -1 {
			return r
		}
		M.SwapRows(r, pivot)

		// now the rth row has a pivot in the rth column, make it a one
		// and clear the rth column of every row below it
		M.scaleRow(r, M.data[r][r].Inv())
		for i := r + 1; i < M.rows; i++ {
			if f := M.data[i][r]; f != 0 {
				M.subRowMultiple(i, r, f)
			}
		}
	}
	return rows
}

func upperTriangular(ctx context.Context, rows int, M *Matrix) bool {
	for r := rows - 1; r > 0; r-- {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		for i := 0; i < r; i++ {
			if f := M.data[i][r]; f != 0 {
				M.subRowMultiple(i, r, f)
			}
		}
	}
	return true
}
