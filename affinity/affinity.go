// affinity.go
// Lifts the 1D wavelet response into the pairwise steering field the
// relaxation engine reads. This matrix is the only channel through
// which sequence identity influences the fold.

package affinity

import "gonum.org/v1/gonum/mat"

// BuildField computes the outer product of the response signal with
// itself: entry (i,j) = response[i] * response[j]. The result is
// symmetric by construction and the diagonal is left at zero, since a
// residue has no affinity contact with itself. The field is built once
// per sequence and treated as read-only afterwards.
func BuildField(response []float64) *mat.SymDense {
	n := len(response)
	field := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			field.SetSym(i, j, response[i]*response[j])
		}
	}
	return field
}
