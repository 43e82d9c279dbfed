// wavelet.go
// Fixed Ricker (Mexican hat) kernel sampling and same-length discrete
// convolution. The kernel is hand-specified configuration; nothing in
// this package is fitted or learned.

package wavelet

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidKernel flags a kernel that violates its structural
// constraints (even or degenerate sample count).
var ErrInvalidKernel = errors.New("wavelet: invalid kernel")

// Ricker samples the Mexican hat wavelet over width points spanning
// [-width/2, +width/2], with sigma fixed at width/4. The width is the
// coherence length in residues and must be odd so the kernel has a
// well-defined center sample.
func Ricker(width int) ([]float64, error) {
	if width < 3 {
		return nil, fmt.Errorf("%w: width %d is below the 3-sample minimum", ErrInvalidKernel, width)
	}
	if width%2 == 0 {
		return nil, fmt.Errorf("%w: width %d is even", ErrInvalidKernel, width)
	}

	kernel := make([]float64, width)
	sigma := float64(width) / 4.0
	half := float64(width) / 2.0
	spacing := float64(width) / float64(width-1)
	for i := 0; i < width; i++ {
		t := (-half + float64(i)*spacing) / sigma
		kernel[i] = (1 - t*t) * math.Exp(-0.5*t*t)
	}
	return kernel, nil
}

// ConvolveSame computes the discrete convolution of signal and kernel
// with zero-padded boundaries, returning a response of the same length
// as the signal. Centering follows the standard "same" convention: the
// output is the middle len(signal) samples of the full convolution,
// offset (K-1)/2 from its start. Signals shorter than the kernel
// degrade gracefully: the padding simply covers more of the support,
// and the result stays deterministic.
func ConvolveSame(signal, kernel []float64) ([]float64, error) {
	if len(kernel) == 0 || len(kernel)%2 == 0 {
		return nil, fmt.Errorf("%w: kernel length %d must be odd", ErrInvalidKernel, len(kernel))
	}

	n := len(signal)
	offset := (len(kernel) - 1) / 2
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var acc float64
		for j, kv := range kernel {
			s := i + offset - j
			if s >= 0 && s < n {
				acc += kv * signal[s]
			}
		}
		out[i] = acc
	}
	return out, nil
}
