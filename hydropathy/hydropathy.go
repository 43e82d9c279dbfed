// hydropathy.go
// Maps an amino acid sequence onto the Kyte-Doolittle hydropathy scale
// and mean-centers the resulting per-residue signal.

package hydropathy

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrUnknownResidue flags a sequence symbol outside the hydropathy
// table. The mapper fails immediately rather than defaulting the value.
var ErrUnknownResidue = errors.New("hydropathy: unknown residue symbol")

// KDScale is the Kyte-Doolittle hydropathy index for the 20 standard
// amino acids (J. Mol. Biol. 157, 1982). Fixed table, never tuned.
var KDScale = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'Q': -3.5, 'E': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// Signal converts a residue sequence into its mean-centered hydropathy
// signal, one value per residue. The output always sums to ~0 so the
// downstream wavelet response is not biased by sequence composition.
func Signal(seq string) ([]float64, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("hydropathy: empty sequence")
	}
	h := make([]float64, len(seq))
	for i := 0; i < len(seq); i++ {
		v, ok := KDScale[seq[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownResidue, seq[i], i)
		}
		h[i] = v
	}
	mean := stat.Mean(h, nil)
	for i := range h {
		h[i] -= mean
	}
	return h, nil
}
