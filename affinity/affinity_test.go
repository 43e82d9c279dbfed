package affinity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildField_OuterProduct(t *testing.T) {
	field := BuildField([]float64{1, -2, 3})

	require.Equal(t, 3, field.SymmetricDim())
	require.InDelta(t, -2, field.At(0, 1), 1e-12)
	require.InDelta(t, 3, field.At(0, 2), 1e-12)
	require.InDelta(t, -6, field.At(1, 2), 1e-12)
}

func TestBuildField_Symmetric(t *testing.T) {
	response := []float64{0.5, -1.25, 4, 2.5, -3}
	field := BuildField(response)
	for i := 0; i < len(response); i++ {
		for j := 0; j < len(response); j++ {
			require.Equal(t, field.At(j, i), field.At(i, j), "entry (%d,%d)", i, j)
		}
	}
}

func TestBuildField_ZeroDiagonal(t *testing.T) {
	response := []float64{2, -3, 5, 7}
	field := BuildField(response)
	for i := range response {
		require.Zero(t, field.At(i, i), "diagonal entry %d", i)
	}
}
