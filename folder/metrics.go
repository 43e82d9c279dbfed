package folder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RadiusOfGyration returns the root-mean-square distance of the chain
// from its centroid, the scalar compactness measure reported each step.
func RadiusOfGyration(positions []r3.Vec) float64 {
	if len(positions) == 0 {
		return 0
	}
	var center r3.Vec
	for _, p := range positions {
		center = r3.Add(center, p)
	}
	center = r3.Scale(1/float64(len(positions)), center)

	var sum float64
	for _, p := range positions {
		sum += r3.Norm2(r3.Sub(p, center))
	}
	return math.Sqrt(sum / float64(len(positions)))
}

// MaxBondDeviation returns the largest |separation - bondLength| over
// adjacent pairs; converged runs stay within the tolerance band.
func MaxBondDeviation(positions []r3.Vec, bondLength float64) float64 {
	maxDev := 0.0
	for i := 0; i < len(positions)-1; i++ {
		d := math.Abs(r3.Norm(r3.Sub(positions[i+1], positions[i])) - bondLength)
		if d > maxDev {
			maxDev = d
		}
	}
	return maxDev
}

// MinNonAdjacentSeparation returns the smallest distance between any
// pair of residues at least two apart along the chain. A well-relaxed
// fold keeps this at or above the steric radius.
func MinNonAdjacentSeparation(positions []r3.Vec) float64 {
	minSep := math.Inf(1)
	for i := 0; i < len(positions); i++ {
		for j := i + 2; j < len(positions); j++ {
			if d := r3.Norm(r3.Sub(positions[i], positions[j])); d < minSep {
				minSep = d
			}
		}
	}
	return minSep
}
