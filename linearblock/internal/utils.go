package internal

import (
	"context"

	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/sirupsen/logrus"
)

// ExtractAFromH row reduces H (m x N) and swaps columns until it has the form [A, I],
// returning A and the column ordering used (column i of [A, I] is column columnOrdering[i] of H).
// nil, nil is returned when the rows of H are not linearly independent.
func ExtractAFromH(ctx context.Context, H *gf3.Matrix) (A *gf3.Matrix, columnOrdering []int) {
	m, N := H.Dims()

	gje, ordering := gf3.GaussianJordanElimination(ctx, H)
	if gje == nil {
		return nil, nil
	}

	//let's check if we got a [ I, * ] format
	if !gje.Slice(0, 0, m, m).Equals(gf3.Identity(m)) {
		logrus.Errorf("failed to transform H matrix into [I,*]")
		return nil, nil
	}

	//we need to convert gje from [ I, A] to [ A, I] (while keeping track)
	columnOrdering = make([]int, len(ordering))
	copy(columnOrdering[0:N-m], ordering[m:N])
	copy(columnOrdering[N-m:N], ordering[0:m])

	A = gje.Slice(0, m, m, N-m)
	return
}

// NewFromP creates the systematic generator G=[I, P] and the parity matrix H=[-P^T, I].
// G*H^T == P - P == 0 for every P.
func NewFromP(P *gf3.Matrix) (G, H *gf3.Matrix) {
	k, r := P.Dims()
	logrus.Debugf("Creating generator matrix from P (%v x %v)", k, r)

	G = gf3.NewMatrix(k, k+r)
	G.SetMatrix(gf3.Identity(k), 0, 0)
	G.SetMatrix(P, 0, k)

	H = gf3.NewMatrix(r, k+r)
	H.SetMatrix(P.T().Neg(), 0, 0)
	H.SetMatrix(gf3.Identity(r), 0, k)

	logrus.Debugf("Generator matrix complete")
	return G, H
}

// ValidateHGMatrices tests if G*H.T == 0 (mod 3) where H.T is the transpose of H.
func ValidateHGMatrices(G, H *gf3.Matrix) bool {
	rows, gcols := G.Dims()
	cols, hcols := H.Dims()
	if gcols != hcols {
		return false
	}

	cache := make([]gf3.Vector, cols)
	for i := 0; i < cols; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := G.Row(i)
		for j := 0; j < cols; j++ {
			//equiv to G*H.T
			if row.Dot(cache[j]) != 0 {
				return false
			}
		}
	}
	return true
}
