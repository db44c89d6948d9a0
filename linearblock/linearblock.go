package linearblock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/nathanhack/ternaryecc/linearblock/internal"
	"github.com/sirupsen/logrus"
)

// MaxMessageLength bounds k. Codes are stored with their full codebook of 3^k codewords.
const MaxMessageLength = 12

//LinearBlock is a ternary linear block code in systematic form. It is immutable once created.
type LinearBlock struct {
	G              *gf3.Matrix // systematic generator [I, P]
	H              *gf3.Matrix // parity matrix [-P^T, I]
	ActualDistance int         // exact minimum weight of the nonzero codewords

	codebookOnce sync.Once
	codebook     *Codebook
}

// NewSystematic creates the code with generator G=[I, P] and parity matrix H=[-P^T, I]
// and computes its minimum distance. ErrRankDeficient is returned if G is not full rank.
func NewSystematic(ctx context.Context, P *gf3.Matrix) (*LinearBlock, error) {
	k, r := P.Dims()
	if k == 0 || r == 0 {
		return nil, fmt.Errorf("P shape == (k, n-k) where k > 0 and n-k > 0 required but found (%v, %v)", k, r)
	}

	if k > MaxMessageLength {
		return nil, fmt.Errorf("%w: message length %v exceeds %v, the codebook of 3^k codewords would not fit", ErrInvalidParameters, k, MaxMessageLength)
	}

	G, H := internal.NewFromP(P)

	rank := gf3.CalculateRank(ctx, G)
	if rank == -1 {
		return nil, ctx.Err()
	}
	if rank != k {
		logrus.Debugf("Generator rank %v != %v", rank, k)
		return nil, ErrRankDeficient
	}

	l := &LinearBlock{G: G, H: H}

	logrus.Debugf("Calculating minimum distance over %v codewords", l.CodewordCount())
	l.ActualDistance = l.Codebook().MinimumWeight()
	logrus.Debugf("Minimum distance %v", l.ActualDistance)
	return l, nil
}

// Codebook returns every codeword of the code. It is built on first use and shared afterwards.
func (l *LinearBlock) Codebook() *Codebook {
	l.codebookOnce.Do(func() {
		l.codebook = NewCodebook(l.G)
	})
	return l.codebook
}

//Encode takes in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message gf3.Vector) (codeword gf3.Vector, err error) {
	if err := message.Validate("message", l.MessageLength()); err != nil {
		return nil, err
	}
	return message.MulMat(l.G), nil
}

// MustEncode is Encode that panics on an invalid message.
func (l *LinearBlock) MustEncode(message gf3.Vector) gf3.Vector {
	codeword, err := l.Encode(message)
	if err != nil {
		panic(err)
	}
	return codeword
}

//Message returns the systematic part of the codeword. No correction is attempted.
func (l *LinearBlock) Message(codeword gf3.Vector) (message gf3.Vector, err error) {
	if err := codeword.Validate("codeword", l.CodewordLength()); err != nil {
		return nil, err
	}
	return codeword[:l.MessageLength()].Copy(), nil
}

// Syndrome returns H*word^T. It is zero exactly when word is a codeword.
func (l *LinearBlock) Syndrome(word gf3.Vector) (syndrome gf3.Vector, err error) {
	if err := word.Validate("word", l.CodewordLength()); err != nil {
		return nil, err
	}
	return l.H.MulVec(word), nil
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.G.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

// MinimumDistanceTarget is the distance n-k+1 the code parameters were validated against.
func (l *LinearBlock) MinimumDistanceTarget() int {
	return l.CodewordLength() - l.MessageLength() + 1
}

// MaxErrors is the number of symbol errors the minimum distance guarantees can be corrected.
func (l *LinearBlock) MaxErrors() int {
	return (l.ActualDistance - 1) / 2
}

// CodewordCount is 3^k.
func (l *LinearBlock) CodewordCount() int {
	count := 1
	for i := 0; i < l.MessageLength(); i++ {
		count *= gf3.Modulus
	}
	return count
}

//Validate will test if this linearblock satisfies G*H.T=0 and rank(G)=k
func (l *LinearBlock) Validate(ctx context.Context) bool {
	if !internal.ValidateHGMatrices(l.G, l.H) {
		return false
	}
	return gf3.CalculateRank(ctx, l.G) == l.MessageLength()
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\n")
	buf.WriteString(fmt.Sprintf("Code length (n): %v\n", l.CodewordLength()))
	buf.WriteString(fmt.Sprintf("Code dimension (k): %v\n", l.MessageLength()))
	buf.WriteString(fmt.Sprintf("Target distance: %v\n", l.MinimumDistanceTarget()))
	buf.WriteString(fmt.Sprintf("Minimum distance: %v\n", l.ActualDistance))
	buf.WriteString(fmt.Sprintf("Correctable errors: %v\n", l.MaxErrors()))
	buf.WriteString("G:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("H:\n")
	buf.WriteString(l.H.String())
	buf.WriteString("}\n")
	return buf.String()
}
