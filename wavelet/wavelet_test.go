package wavelet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRicker_Shape(t *testing.T) {
	kernel, err := Ricker(15)
	require.NoError(t, err)
	require.Len(t, kernel, 15)

	// Unit peak at the center sample, symmetric flanks, negative lobes.
	require.InDelta(t, 1.0, kernel[7], 1e-9)
	for i := 0; i < 7; i++ {
		require.InDelta(t, kernel[14-i], kernel[i], 1e-9, "sample %d", i)
	}
	require.Less(t, kernel[2], 0.0)
	require.Less(t, kernel[12], 0.0)
}

func TestRicker_Invalid(t *testing.T) {
	for _, width := range []int{-3, 0, 1, 2, 4, 14} {
		_, err := Ricker(width)
		require.ErrorIs(t, err, ErrInvalidKernel, "width %d", width)
	}
}

func TestConvolveSame_Identity(t *testing.T) {
	signal := []float64{1.5, -2, 0.25, 4, -1}
	out, err := ConvolveSame(signal, []float64{0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, signal, out)
}

func TestConvolveSame_HandComputed(t *testing.T) {
	// Full convolution of [1,2,3] with [1,0,-1] is [1,2,2,-2,-3];
	// the centered same-length slice is [2,2,-2].
	out, err := ConvolveSame([]float64{1, 2, 3}, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2, -2}, out)
}

func TestConvolveSame_SignalShorterThanKernel(t *testing.T) {
	// Zero padding covers the whole support; the single output sample
	// is the center tap times the lone signal value.
	out, err := ConvolveSame([]float64{3}, []float64{0.5, 2, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{6}, out)
}

func TestConvolveSame_EvenKernel(t *testing.T) {
	_, err := ConvolveSame([]float64{1, 2, 3}, []float64{1, -1})
	require.ErrorIs(t, err, ErrInvalidKernel)

	_, err = ConvolveSame([]float64{1, 2, 3}, nil)
	require.ErrorIs(t, err, ErrInvalidKernel)
}

func TestConvolveSame_Deterministic(t *testing.T) {
	kernel, err := Ricker(15)
	require.NoError(t, err)

	signal := make([]float64, 40)
	for i := range signal {
		signal[i] = float64(i%7) - 3
	}
	first, err := ConvolveSame(signal, kernel)
	require.NoError(t, err)
	second, err := ConvolveSame(signal, kernel)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
