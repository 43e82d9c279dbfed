package hydropathy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignal_MeanCentered(t *testing.T) {
	sequences := []string{
		"MK",
		"ACDEFGHIKLMNPQRSTVWY",
		"MQIFVKTLTGKTITLEVEPSDTIENVKAKIQDKEGIPPDQQRLIFAGKQLEDGRTLSDYNIQKESTLHLVLRLRGG",
	}
	for _, seq := range sequences {
		signal, err := Signal(seq)
		require.NoError(t, err, "sequence %s", seq)
		require.Len(t, signal, len(seq))

		sum := 0.0
		for _, v := range signal {
			sum += v
		}
		require.InDelta(t, 0, sum/float64(len(signal)), 1e-12, "sequence %s", seq)
	}
}

func TestSignal_KnownValues(t *testing.T) {
	// M = 1.9, I = 4.5 on the Kyte-Doolittle scale; mean is 3.2.
	signal, err := Signal("MI")
	require.NoError(t, err)
	require.InDelta(t, -1.3, signal[0], 1e-12)
	require.InDelta(t, 1.3, signal[1], 1e-12)
}

func TestSignal_UnknownResidue(t *testing.T) {
	for _, seq := range []string{"MXV", "mkv", "MK*"} {
		_, err := Signal(seq)
		require.ErrorIs(t, err, ErrUnknownResidue, "sequence %s", seq)
	}

	_, err := Signal("MXV")
	require.ErrorContains(t, err, "position 1")
}

func TestSignal_Empty(t *testing.T) {
	_, err := Signal("")
	require.Error(t, err)
}

func TestKDScale_Complete(t *testing.T) {
	require.Len(t, KDScale, 20)
	for _, aa := range []byte("ACDEFGHIKLMNPQRSTVWY") {
		_, ok := KDScale[aa]
		require.True(t, ok, "missing residue %c", aa)
	}
}
