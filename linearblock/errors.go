package linearblock

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameters  = errors.New("invalid code parameters")
	ErrRankDeficient      = errors.New("generator matrix is not full rank")
	ErrConstructionFailed = errors.New("unable to construct code")
)

// Bound names the check that (n, k, d) failed.
type Bound string

const (
	BoundShape     Bound = "n > k > 0"
	BoundSingleton Bound = "Singleton"
	BoundHamming   Bound = "Hamming"
	BoundGilbert   Bound = "Gilbert"
)

//InvalidParametersError is returned when (n, k) can not be used to build a code.
type InvalidParametersError struct {
	Bound Bound
	N     int
	K     int
	D     int
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("%v: (n=%v, k=%v, d=%v) violates the %v bound", ErrInvalidParameters, e.N, e.K, e.D, e.Bound)
}

func (e *InvalidParametersError) Unwrap() error {
	return ErrInvalidParameters
}
