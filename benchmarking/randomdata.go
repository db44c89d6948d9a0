package benchmarking

import (
	"math"

	"github.com/nathanhack/ternaryecc/gf3"
	"golang.org/x/exp/rand"
)

// RandomMessage creates a random message of length len.
func RandomMessage(rnd *rand.Rand, len int) gf3.Vector {
	message := make(gf3.Vector, len)
	for i := range message {
		message[i] = gf3.Symbol(rnd.Intn(gf3.Modulus))
	}
	return message
}

// RandomSymbolErrors creates a copy of input where round(probabilityOfError*len(input))
// symbols are replaced by one of the two other symbols.
func RandomSymbolErrors(rnd *rand.Rand, input gf3.Vector, probabilityOfError float64) gf3.Vector {
	return RandomSymbolErrorCount(rnd, input, int(math.Round(probabilityOfError*float64(len(input)))))
}

// RandomSymbolErrorCount changes min(numberOfErrors,len(input)) distinct symbols of a copy of input.
func RandomSymbolErrorCount(rnd *rand.Rand, input gf3.Vector, numberOfErrors int) gf3.Vector {
	output := input.Copy()
	if numberOfErrors > len(input) {
		numberOfErrors = len(input)
	}
	if numberOfErrors < 0 {
		numberOfErrors = 0
	}

	for _, i := range rnd.Perm(len(input))[:numberOfErrors] {
		output[i] = output[i].Add(gf3.Symbol(1 + rnd.Intn(gf3.Modulus-1)))
	}
	return output
}
