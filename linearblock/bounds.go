package linearblock

import (
	"math/big"
)

var (
	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)
)

// ValidateParameters checks n > k > 0 and then the Hamming, Singleton and Gilbert
// bounds for the target distance d = n-k+1. It returns an *InvalidParametersError
// naming the first check that failed.
func ValidateParameters(n, k int) error {
	d := n - k + 1
	switch {
	case n <= 0 || k <= 0 || k >= n:
		return &InvalidParametersError{Bound: BoundShape, N: n, K: k, D: d}
	case !HammingBound(n, k, d):
		return &InvalidParametersError{Bound: BoundHamming, N: n, K: k, D: d}
	case !SingletonBound(n, k, d):
		return &InvalidParametersError{Bound: BoundSingleton, N: n, K: k, D: d}
	case !GilbertBound(n, k, d):
		return &InvalidParametersError{Bound: BoundGilbert, N: n, K: k, D: d}
	}
	return nil
}

// SingletonBound reports k <= n-d+1.
func SingletonBound(n, k, d int) bool {
	return k <= n-d+1
}

// HammingBound reports 3^k <= 3^n / V where V is the volume of a ternary
// Hamming ball of radius floor((d-1)/2).
func HammingBound(n, k, d int) bool {
	if d < 1 {
		return false
	}
	vol := ballVolume(n, (d-1)/2)
	lhs := new(big.Int).Mul(pow3(k), vol)
	return lhs.Cmp(pow3(n)) <= 0
}

// GilbertBound reports 3^k >= 3^n / V' where V' is the volume of a ternary
// Hamming ball of radius d-2. An empty ball (d < 2) places no restriction.
func GilbertBound(n, k, d int) bool {
	if d < 2 {
		return true
	}
	vol := ballVolume(n, d-2)
	lhs := new(big.Int).Mul(pow3(k), vol)
	return lhs.Cmp(pow3(n)) >= 0
}

// ballVolume is sum_{i=0}^{radius} C(n,i)*2^i, the number of length n ternary
// words within distance radius of a fixed word.
func ballVolume(n, radius int) *big.Int {
	vol := new(big.Int)
	for i := 0; i <= radius && i <= n; i++ {
		term := new(big.Int).Binomial(int64(n), int64(i))
		term.Mul(term, new(big.Int).Lsh(bigOne, uint(i)))
		vol.Add(vol, term)
	}
	return vol
}

func pow3(e int) *big.Int {
	return new(big.Int).Exp(bigThree, big.NewInt(int64(e)), nil)
}
