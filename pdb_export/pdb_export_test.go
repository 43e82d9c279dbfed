package pdb_export

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWriteTo_CATrace(t *testing.T) {
	seq := "MKV"
	positions := []r3.Vec{
		{X: 0.123, Y: -1.5, Z: 2},
		{X: 3.8, Y: 0, Z: 0},
		{X: 7.612, Y: 4.25, Z: -3.333},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, seq, positions))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5) // 3 ATOM + TER + END
	require.Equal(t, "END", lines[4])
	require.True(t, strings.HasPrefix(lines[3], "TER"))

	wantNames := []string{"MET", "LYS", "VAL"}
	for i := 0; i < 3; i++ {
		line := lines[i]
		require.True(t, strings.HasPrefix(line, "ATOM"), "line %d", i)
		require.Len(t, line, 78, "line %d", i)
		require.Equal(t, "CA", strings.TrimSpace(line[12:16]), "line %d", i)
		require.Equal(t, wantNames[i], strings.TrimSpace(line[17:20]), "line %d", i)
		require.Equal(t, strconv.Itoa(i+1), strings.TrimSpace(line[22:26]), "line %d", i)
	}
}

// The export must be a lossless re-serialization of the position array
// at PDB coordinate precision (three decimals).
func TestWriteTo_RoundTripCoordinates(t *testing.T) {
	seq := "GAV"
	positions := []r3.Vec{
		{X: -12.345, Y: 6.789, Z: 0.001},
		{X: 100.5, Y: -99.25, Z: 42},
		{X: 0, Y: 0, Z: -0.125},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, seq, positions))

	lines := strings.Split(buf.String(), "\n")
	for i, want := range positions {
		line := lines[i]
		x, err := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
		require.NoError(t, err)
		z, err := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
		require.NoError(t, err)
		require.InDelta(t, want.X, x, 5e-4, "residue %d", i)
		require.InDelta(t, want.Y, y, 5e-4, "residue %d", i)
		require.InDelta(t, want.Z, z, 5e-4, "residue %d", i)
	}
}

func TestWriteTo_LengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTo(&buf, "MK", []r3.Vec{{}})
	require.Error(t, err)

	err = WriteTo(&buf, "", nil)
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fold.pdb")
	require.NoError(t, WriteFile(path, "MK", []r3.Vec{{}, {X: 3.8}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "ATOM")
	require.Contains(t, string(data), "END")
}
