package codec

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/nathanhack/ternaryecc/cmd/internal/tools"
	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, params tools.CodeParams) {
	Code = params
	Error = ""
	DecoderTrials = 100
	DecoderSeed = 1
	Threads = 1
	t.Cleanup(func() { Code = tools.CodeParams{}; Error = "" })
}

func TestEncode(t *testing.T) {
	setup(t, tools.CodeParams{HammingParity: 2})
	ecc, err := tools.CreateLinearBlockECC(context.Background(), Code)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, encode(context.Background(), &out, "1 2"))
	require.Equal(t, ecc.MustEncode(gf3.NewVector(1, 2)).String()+"\n", out.String())

	err = encode(context.Background(), &out, "1 3")
	require.True(t, errors.Is(err, gf3.ErrAlphabetViolation))
	err = encode(context.Background(), &out, "1 2 0")
	require.True(t, errors.Is(err, gf3.ErrAlphabetViolation))
	require.Error(t, encode(context.Background(), &out, "1 x"))
}

func TestDecode(t *testing.T) {
	setup(t, tools.CodeParams{HammingParity: 2})
	ecc, err := tools.CreateLinearBlockECC(context.Background(), Code)
	require.NoError(t, err)
	codeword := ecc.MustEncode(gf3.NewVector(2, 1))

	var out bytes.Buffer
	require.NoError(t, decode(context.Background(), &out, codeword.String()))
	require.Equal(t, "Message: 2 1\nDistance: 0\n", out.String())

	out.Reset()
	Error = "0 0 0 2"
	received := gf3.Add(codeword, gf3.NewVector(0, 0, 0, 2))
	require.NoError(t, decode(context.Background(), &out, codeword.String()))
	require.Equal(t, "Received: "+received.String()+"\nMessage: 2 1\nDistance: 1\n", out.String())

	Error = "0 1"
	require.True(t, errors.Is(decode(context.Background(), &out, codeword.String()), gf3.ErrAlphabetViolation))
}
