package folder

import "errors"

// Engine errors. Physically implausible intermediate states (deep
// overlap, large displacement) are not errors; the solver keeps
// iterating and lets the constraints pull the chain back. Only a
// non-finite position aborts a run.
var (
	// ErrNonFiniteState indicates a relaxation step produced a NaN or
	// infinite position. The run stops at the last fully-committed
	// step; nothing is clamped or retried.
	ErrNonFiniteState = errors.New("folder: non-finite position")

	// ErrSequenceTooShort indicates a chain with fewer than two
	// residues, which has no bonds to relax.
	ErrSequenceTooShort = errors.New("folder: sequence must have at least 2 residues")
)
