package config // Run configuration for the relaxation engine

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters flags a FoldParams bundle outside sane bounds.
// Surfaced before any relaxation step runs.
var ErrInvalidParameters = errors.New("config: invalid fold parameters")

// FoldParams bundles every constraint scalar for a single fold run.
// The bundle is configuration, not state: it is constant for the
// lifetime of a run and safe to copy between runs.
type FoldParams struct {
	BondLength           float64 // target C-alpha spacing (Angstroms)
	BondTolerance        float64 // allowed deviation band around BondLength
	StericRadius         float64 // minimum non-adjacent pair separation
	AttractionStrength   float64 // scaling of the affinity pull term
	ContactThreshold     float64 // minimum affinity for an attractive contact
	MinSequenceGap       int     // contacts closer than this along the chain are skipped
	MinContactDistance   float64 // attraction only acts beyond this separation
	BondStiffness        float64 // fraction of bond deviation corrected per step
	StericStiffness      float64 // fraction of steric overlap corrected per step
	StepSize             float64 // damping factor applied to the summed displacement
	JitterAmplitude      float64 // thermal jitter per axis per step (0 disables)
	Seed                 int64   // jitter source seed; fixed seed keeps runs reproducible
	MaxIterations        int     // relaxation step budget
	ConvergenceThreshold float64 // max per-residue displacement considered settled
	KernelWidth          int     // wavelet coherence length in residues (odd)
	SnapshotInterval     int     // record positions every k steps (0 disables)
}

// DefaultFoldParams returns the reference benchmark configuration, the
// one the documented ubiquitin native-vs-scrambled comparison uses.
func DefaultFoldParams() FoldParams {
	return FoldParams{
		BondLength:           3.8,
		BondTolerance:        0.2,
		StericRadius:         4.5,
		AttractionStrength:   0.003,
		ContactThreshold:     20.0,
		MinSequenceGap:       4,
		MinContactDistance:   5.0,
		BondStiffness:        0.5,
		StericStiffness:      2.0,
		StepSize:             0.1,
		JitterAmplitude:      0.05,
		Seed:                 1,
		MaxIterations:        600,
		ConvergenceThreshold: 0.01,
		KernelWidth:          15,
		SnapshotInterval:     0,
	}
}

// Validate checks every field against its sane range and reports the
// first offender. A bundle that fails here must never reach the engine.
func (p FoldParams) Validate() error {
	switch {
	case p.BondLength <= 0:
		return fmt.Errorf("%w: bond_length must be positive, got %g", ErrInvalidParameters, p.BondLength)
	case p.BondTolerance < 0:
		return fmt.Errorf("%w: bond_tolerance must be non-negative, got %g", ErrInvalidParameters, p.BondTolerance)
	case p.StericRadius <= 0:
		return fmt.Errorf("%w: steric_radius must be positive, got %g", ErrInvalidParameters, p.StericRadius)
	case p.AttractionStrength <= 0:
		return fmt.Errorf("%w: attraction_strength must be positive, got %g", ErrInvalidParameters, p.AttractionStrength)
	case p.ContactThreshold < 0:
		return fmt.Errorf("%w: contact_threshold must be non-negative, got %g", ErrInvalidParameters, p.ContactThreshold)
	case p.MinSequenceGap < 2:
		return fmt.Errorf("%w: min_sequence_gap must be at least 2, got %d", ErrInvalidParameters, p.MinSequenceGap)
	case p.MinContactDistance < 0:
		return fmt.Errorf("%w: min_contact_distance must be non-negative, got %g", ErrInvalidParameters, p.MinContactDistance)
	case p.BondStiffness <= 0:
		return fmt.Errorf("%w: bond_stiffness must be positive, got %g", ErrInvalidParameters, p.BondStiffness)
	case p.StericStiffness <= 0:
		return fmt.Errorf("%w: steric_stiffness must be positive, got %g", ErrInvalidParameters, p.StericStiffness)
	case p.StepSize <= 0:
		return fmt.Errorf("%w: step_size must be positive, got %g", ErrInvalidParameters, p.StepSize)
	case p.JitterAmplitude < 0:
		return fmt.Errorf("%w: jitter_amplitude must be non-negative, got %g", ErrInvalidParameters, p.JitterAmplitude)
	case p.MaxIterations < 1:
		return fmt.Errorf("%w: max_iterations must be at least 1, got %d", ErrInvalidParameters, p.MaxIterations)
	case p.ConvergenceThreshold <= 0:
		return fmt.Errorf("%w: convergence_threshold must be positive, got %g", ErrInvalidParameters, p.ConvergenceThreshold)
	case p.KernelWidth < 3:
		return fmt.Errorf("%w: kernel_width must be at least 3, got %d", ErrInvalidParameters, p.KernelWidth)
	case p.KernelWidth%2 == 0:
		return fmt.Errorf("%w: kernel_width must be odd, got %d", ErrInvalidParameters, p.KernelWidth)
	case p.SnapshotInterval < 0:
		return fmt.Errorf("%w: snapshot_interval must be non-negative, got %d", ErrInvalidParameters, p.SnapshotInterval)
	}
	return nil
}
