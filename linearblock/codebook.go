package linearblock

import (
	"github.com/nathanhack/ternaryecc/gf3"
	"gonum.org/v1/gonum/stat/combin"
)

// Codebook holds every codeword of a code indexed by its message. Messages are
// numbered in lexicographic order, so index 0 is the all zero message.
type Codebook struct {
	dims      []int
	codewords []gf3.Vector
}

// NewCodebook encodes all 3^k messages with the k x n generator G.
func NewCodebook(G *gf3.Matrix) *Codebook {
	k, _ := G.Dims()
	dims := make([]int, k)
	for i := range dims {
		dims[i] = gf3.Modulus
	}

	cb := &Codebook{
		dims:      dims,
		codewords: make([]gf3.Vector, 0, combin.Card(dims)),
	}

	gen := combin.NewCartesianGenerator(dims)
	sub := make([]int, k)
	message := make(gf3.Vector, k)
	for gen.Next() {
		sub = gen.Product(sub)
		for i, s := range sub {
			message[i] = gf3.Symbol(s)
		}
		cb.codewords = append(cb.codewords, message.MulMat(G))
	}
	return cb
}

// Len is the number of codewords, 3^k.
func (c *Codebook) Len() int {
	return len(c.codewords)
}

// Codeword returns the codeword for the message with index idx. The result must not be modified.
func (c *Codebook) Codeword(idx int) gf3.Vector {
	return c.codewords[idx]
}

// Message returns the message with index idx.
func (c *Codebook) Message(idx int) gf3.Vector {
	sub := combin.SubFor(nil, idx, c.dims)
	message := make(gf3.Vector, len(sub))
	for i, s := range sub {
		message[i] = gf3.Symbol(s)
	}
	return message
}

// MinimumWeight returns the smallest Hamming weight among the nonzero codewords.
// If there are none the codeword length is returned.
func (c *Codebook) MinimumWeight() int {
	if len(c.codewords) == 0 {
		return 0
	}
	min := c.codewords[0].Len()
	//index 0 is the zero message and is skipped
	for _, cw := range c.codewords[1:] {
		if w := cw.HammingWeight(); 0 < w && w < min {
			min = w
		}
	}
	return min
}

// MinimumDistance exhaustively computes the minimum distance of the code generated by G.
func MinimumDistance(G *gf3.Matrix) int {
	return NewCodebook(G).MinimumWeight()
}
