package gf3

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Modulus is the order of the field.
const Modulus = 3

// Symbol is an element of GF(3). Valid symbols are 0, 1 and 2.
type Symbol uint8

var ErrAlphabetViolation = errors.New("alphabet violation")

//AlphabetError reports a vector with the wrong length or a symbol outside {0,1,2}.
type AlphabetError struct {
	Name     string // what was being checked (message, codeword, received, ...)
	Expected int    // required length
	Length   int    // length found
	Index    int    // index of the bad symbol, -1 when the length is wrong
	Value    int    // value of the bad symbol
}

func (e *AlphabetError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v length == %v is required but found %v", e.Name, e.Expected, e.Length)
	}
	return fmt.Sprintf("%v[%v] == %v is not in {0,1,2}", e.Name, e.Index, e.Value)
}

func (e *AlphabetError) Unwrap() error {
	return ErrAlphabetViolation
}

// Reduce maps any integer onto its GF(3) residue.
func Reduce(v int) Symbol {
	return Symbol(((v % Modulus) + Modulus) % Modulus)
}

func (a Symbol) Valid() bool {
	return a < Modulus
}

func (a Symbol) Add(b Symbol) Symbol {
	return (a + b) % Modulus
}

func (a Symbol) Sub(b Symbol) Symbol {
	return (a + Modulus - b) % Modulus
}

func (a Symbol) Mul(b Symbol) Symbol {
	return (a * b) % Modulus
}

func (a Symbol) Neg() Symbol {
	return (Modulus - a) % Modulus
}

// Inv returns the multiplicative inverse. In GF(3) every nonzero element is its own inverse.
func (a Symbol) Inv() Symbol {
	if a%Modulus == 0 {
		panic("gf3: zero has no inverse")
	}
	return a % Modulus
}

// Vector is an ordered sequence of symbols.
type Vector []Symbol

// NewVector creates a vector from integers, reducing each mod 3.
func NewVector(values ...int) Vector {
	v := make(Vector, len(values))
	for i, x := range values {
		v[i] = Reduce(x)
	}
	return v
}

// FromInts converts values to a vector without reducing them; any value outside {0,1,2} is an error.
func FromInts(name string, values []int) (Vector, error) {
	v := make(Vector, len(values))
	for i, x := range values {
		if x < 0 || x >= Modulus {
			return nil, &AlphabetError{Name: name, Expected: len(values), Length: len(values), Index: i, Value: x}
		}
		v[i] = Symbol(x)
	}
	return v, nil
}

// Validate checks that v has the given length and only contains symbols in {0,1,2}.
func (v Vector) Validate(name string, length int) error {
	if len(v) != length {
		return &AlphabetError{Name: name, Expected: length, Length: len(v), Index: -1}
	}
	for i, s := range v {
		if !s.Valid() {
			return &AlphabetError{Name: name, Expected: length, Length: len(v), Index: i, Value: int(s)}
		}
	}
	return nil
}

func (v Vector) Len() int {
	return len(v)
}

func (v Vector) Copy() Vector {
	result := make(Vector, len(v))
	copy(result, v)
	return result
}

func (v Vector) IsZero() bool {
	for _, s := range v {
		if s != 0 {
			return false
		}
	}
	return true
}

// HammingWeight is the number of nonzero symbols.
func (v Vector) HammingWeight() int {
	count := 0
	for _, s := range v {
		if s != 0 {
			count++
		}
	}
	return count
}

// HammingDistance is the number of positions where v and b differ.
// If they are different sizes the extra symbols count as differences.
func (v Vector) HammingDistance(b Vector) int {
	min, max := len(v), len(b)
	if min > max {
		min, max = max, min
	}
	count := 0
	for i := 0; i < min; i++ {
		if v[i] != b[i] {
			count++
		}
	}
	return max - min + count
}

func (v Vector) Equals(b Vector) bool {
	if len(v) != len(b) {
		return false
	}
	for i := range v {
		if v[i] != b[i] {
			return false
		}
	}
	return true
}

// Add returns a+b componentwise mod 3.
func Add(a, b Vector) Vector {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vector lengths must match: %v != %v", len(a), len(b)))
	}
	result := make(Vector, len(a))
	for i := range a {
		result[i] = a[i].Add(b[i])
	}
	return result
}

// Sub returns a-b componentwise mod 3.
func Sub(a, b Vector) Vector {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vector lengths must match: %v != %v", len(a), len(b)))
	}
	result := make(Vector, len(a))
	for i := range a {
		result[i] = a[i].Sub(b[i])
	}
	return result
}

// Dot is the inner product mod 3.
func (v Vector) Dot(b Vector) Symbol {
	if len(v) != len(b) {
		panic(fmt.Sprintf("vector lengths must match: %v != %v", len(v), len(b)))
	}
	sum := 0
	for i := range v {
		sum += int(v[i]) * int(b[i])
	}
	return Reduce(sum)
}

// MulMat returns the row vector v*M mod 3.
func (v Vector) MulMat(M *Matrix) Vector {
	rows, cols := M.Dims()
	if len(v) != rows {
		panic(fmt.Sprintf("vector length == %v is required but found %v", rows, len(v)))
	}
	sums := make([]int, cols)
	for r, s := range v {
		if s == 0 {
			continue
		}
		for c, x := range M.data[r] {
			sums[c] += int(s) * int(x)
		}
	}
	result := make(Vector, cols)
	for c, sum := range sums {
		result[c] = Reduce(sum)
	}
	return result
}

func (v Vector) String() string {
	strs := make([]string, len(v))
	for i, s := range v {
		strs[i] = strconv.Itoa(int(s))
	}
	return strings.Join(strs, " ")
}

// ParseVector parses whitespace separated symbols, e.g. "1 0 2".
func ParseVector(name, text string) (Vector, error) {
	fields := strings.Fields(text)
	values := make([]int, len(fields))
	for i, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%v: unable to parse %q: %w", name, f, err)
		}
		values[i] = x
	}
	return FromInts(name, values)
}
