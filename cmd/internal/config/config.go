// Package config reads channel simulation profiles written in TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/nathanhack/ternaryecc/linearblock"
	"github.com/nathanhack/ternaryecc/linearblock/decoding/isd"
	"github.com/nathanhack/ternaryecc/linearblock/hamming"
)

const (
	defaultTrials = 10_000
)

var defaultProbabilities = []float64{0.05, 0.10, 0.15, 0.20, 0.25, 0.30}

// Code selects the code under test. Codes are rebuilt from their parameters and
// seed, so the same profile always simulates the same code. A nonzero
// HammingParity selects the ternary hamming code with that many parity symbols
// and the other fields must be left out.
type Code struct {
	CodewordLength int
	MessageLength  int
	Seed           uint64
	HammingParity  int
}

// Simulation describes the ternary symmetric channel runs.
type Simulation struct {
	Trials        int
	Probabilities []float64
	Threads       int
	DecoderTrials int
	Seed          uint64
}

// Config is a channel simulation profile.
type Config struct {
	Code       *Code
	Simulation *Simulation
}

func (c *Code) validate() error {
	if c.HammingParity != 0 {
		if c.CodewordLength != 0 || c.MessageLength != 0 || c.Seed != 0 {
			return errors.New("config: Code.HammingParity can not be combined with CodewordLength, MessageLength or Seed")
		}
		if c.HammingParity < 2 || c.HammingParity > hamming.MaxParitySymbols {
			return fmt.Errorf("config: Code.HammingParity must be within [2, %v], got %v", hamming.MaxParitySymbols, c.HammingParity)
		}
		return nil
	}
	if err := linearblock.ValidateParameters(c.CodewordLength, c.MessageLength); err != nil {
		return fmt.Errorf("config: Code: %w", err)
	}
	return nil
}

func (s *Simulation) applyDefaults() {
	if s.Trials == 0 {
		s.Trials = defaultTrials
	}
	if len(s.Probabilities) == 0 {
		s.Probabilities = append([]float64{}, defaultProbabilities...)
	}
	if s.DecoderTrials == 0 {
		s.DecoderTrials = isd.DefaultTrials
	}
}

func (s *Simulation) validate() error {
	if s.Trials < 0 {
		return fmt.Errorf("config: Simulation.Trials must be positive, got %v", s.Trials)
	}
	if s.Threads < 0 {
		return fmt.Errorf("config: Simulation.Threads must be >= 0, got %v", s.Threads)
	}
	if s.DecoderTrials < 0 {
		return fmt.Errorf("config: Simulation.DecoderTrials must be positive, got %v", s.DecoderTrials)
	}
	for _, p := range s.Probabilities {
		if p < 0 || p > 1 {
			return fmt.Errorf("config: Simulation.Probabilities must be within [0, 1], got %v", p)
		}
	}
	return nil
}

// Validate returns nil if the config is valid
// and otherwise an error is returned.
func (cfg *Config) Validate() error {
	if cfg.Code == nil {
		return errors.New("config: No Code block was present")
	}
	if err := cfg.Code.validate(); err != nil {
		return err
	}
	if cfg.Simulation == nil {
		cfg.Simulation = &Simulation{}
	}
	cfg.Simulation.applyDefaults()
	return cfg.Simulation.validate()
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
