package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nathanhack/ternaryecc/linearblock"
	"github.com/nathanhack/ternaryecc/linearblock/decoding/isd"
	"github.com/stretchr/testify/require"
)

const fullProfile = `
[Code]
  CodewordLength = 8
  MessageLength = 3
  Seed = 7

[Simulation]
  Trials = 500
  Probabilities = [0.1, 0.2]
  Threads = 2
  DecoderTrials = 40
  Seed = 3
`

func TestLoad(t *testing.T) {
	cfg, err := Load([]byte(fullProfile))
	require.NoError(t, err)
	require.Equal(t, &Code{CodewordLength: 8, MessageLength: 3, Seed: 7}, cfg.Code)
	require.Equal(t, &Simulation{
		Trials:        500,
		Probabilities: []float64{0.1, 0.2},
		Threads:       2,
		DecoderTrials: 40,
		Seed:          3,
	}, cfg.Simulation)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]byte("[Code]\nHammingParity = 3\n"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Code.HammingParity)
	require.Equal(t, defaultTrials, cfg.Simulation.Trials)
	require.Equal(t, defaultProbabilities, cfg.Simulation.Probabilities)
	require.Equal(t, isd.DefaultTrials, cfg.Simulation.DecoderTrials)
	require.Equal(t, 0, cfg.Simulation.Threads)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []string{
		"",
		"[Code]\nCodewordLength = 3\nMessageLength = 3\n",
		"[Code]\nCodewordLength = 8\nMessageLength = 3\nColour = 1\n",
		"[Code]\nHammingParity = 1\n",
		"[Code]\nHammingParity = 4\n",
		"[Code]\nHammingParity = 2\nSeed = 1\n",
		"[Code]\nHammingParity = 2\n[Simulation]\nProbabilities = [1.5]\n",
		"[Code]\nHammingParity = 2\n[Simulation]\nTrials = -1\n",
		"[Code\n",
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			cfg, err := Load([]byte(test))
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestLoad_InvalidParametersWrapped(t *testing.T) {
	_, err := Load([]byte("[Code]\nCodewordLength = 10\nMessageLength = 9\n"))
	require.True(t, errors.Is(err, linearblock.ErrInvalidParameters))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(fullProfile), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Code.CodewordLength)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
