package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/nathanhack/ternaryecc/benchmarking"
	"github.com/nathanhack/ternaryecc/gf3"
	"github.com/nathanhack/ternaryecc/linearblock"
	"github.com/nathanhack/ternaryecc/linearblock/hamming"
	"github.com/nathanhack/ternaryecc/linearblock/ternary"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[strconv.FormatFloat(f, 'g', -1, 64)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

// Md5Sum fingerprints a generator matrix so results can be matched to the code that produced them.
func Md5Sum(G *gf3.Matrix) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(G.String())))
}

// CodeParams identifies a code by how it is built. The same params always give the same code.
type CodeParams struct {
	CodewordLength int
	MessageLength  int
	Seed           uint64
	HammingParity  int // nonzero selects the hamming code and ignores the other fields
}

func (p CodeParams) String() string {
	if p.HammingParity != 0 {
		return fmt.Sprintf("hamming(r=%v)", p.HammingParity)
	}
	return fmt.Sprintf("ternary(n=%v,k=%v,seed=%v)", p.CodewordLength, p.MessageLength, p.Seed)
}

// CreateLinearBlockECC rebuilds the code described by params.
func CreateLinearBlockECC(ctx context.Context, params CodeParams) (*linearblock.LinearBlock, error) {
	if params.HammingParity != 0 {
		if params.HammingParity < 2 {
			return nil, fmt.Errorf("hamming parity must be >= 2, got %v", params.HammingParity)
		}
		return hamming.New(ctx, params.HammingParity)
	}
	return ternary.New(ctx, params.CodewordLength, params.MessageLength, ternary.WithSeed(params.Seed))
}

// LoadResults returns nil, nil when filepath does not exist yet.
func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

// LoadAllResults loads every results file and returns the sorted union of their error probabilities.
func LoadAllResults(filepaths []string) ([]*SimulationStats, []float64, error) {
	stats := make([]*SimulationStats, len(filepaths))
	percentagesFloats := make(map[float64]bool)
	for i, resultFile := range filepaths {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, nil, err
		}
		if s == nil {
			return nil, nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		stats[i] = s
		for p := range s.Stats {
			percentagesFloats[p] = true
		}
	}

	percentagesList := maps.Keys(percentagesFloats)
	slices.Sort(percentagesList)
	return stats, percentagesList, nil
}

type ErrorKind int

const (
	CodewordError ErrorKind = iota
	MessageError
	ParityError
)

// ErrorKindFor picks the error reported by the results tools, codeword errors unless a flag says otherwise.
func ErrorKindFor(messageError, parityError bool) ErrorKind {
	switch {
	case messageError:
		return MessageError
	case parityError:
		return ParityError
	default:
		return CodewordError
	}
}

// Mean returns the mean remaining symbol error rate of kind.
func (k ErrorKind) Mean(s benchmarking.Stats) float64 {
	switch k {
	case MessageError:
		return s.ChannelMessageError.Mean
	case ParityError:
		return s.ChannelParityError.Mean
	default:
		return s.ChannelCodewordError.Mean
	}
}

func (k ErrorKind) String() string {
	switch k {
	case MessageError:
		return "Message Error"
	case ParityError:
		return "Parity Error"
	default:
		return "Codeword Error"
	}
}
