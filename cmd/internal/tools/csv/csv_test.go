package csv

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/nathanhack/ternaryecc/benchmarking"
	"github.com/nathanhack/ternaryecc/cmd/internal/tools"
	"github.com/stretchr/testify/require"
)

func stats(codeword, message float64) benchmarking.Stats {
	var s benchmarking.Stats
	s.ChannelCodewordError.Update(codeword)
	s.ChannelMessageError.Update(message)
	return s
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, tools.SaveResults(a, &tools.SimulationStats{Stats: map[float64]benchmarking.Stats{
		0.2: stats(0.5, 0.25),
		0.1: stats(0.125, 0),
	}}))
	require.NoError(t, tools.SaveResults(b, &tools.SimulationStats{Stats: map[float64]benchmarking.Stats{
		0.3: stats(1, 1),
	}}))

	var out bytes.Buffer
	require.NoError(t, writeCSV(&out, []string{a, b}, tools.CodewordError))
	expected := "Results File,0.1,0.2,0.3\n" +
		filepath.Join(dir, "a") + ",0.125,0.5,\n" +
		filepath.Join(dir, "b") + ",,,1\n"
	require.Equal(t, expected, out.String())

	out.Reset()
	require.NoError(t, writeCSV(&out, []string{a}, tools.MessageError))
	require.Equal(t, "Results File,0.1,0.2\n"+filepath.Join(dir, "a")+",0,0.25\n", out.String())

	require.Error(t, writeCSV(&out, []string{filepath.Join(dir, "missing.json")}, tools.CodewordError))
}
