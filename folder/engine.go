// engine.go
// The geometry relaxation engine. Owns the evolving 3D position array
// for one chain and iterates affinity attraction, bond correction and
// steric exclusion until the chain settles or the step budget runs out.

package folder

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"nomadic_fold_go/affinity"
	"nomadic_fold_go/config"
	"nomadic_fold_go/hydropathy"
	"nomadic_fold_go/wavelet"
)

// ReferenceSequence is the 76-residue human ubiquitin chain used by
// the default native-vs-scrambled benchmark.
const ReferenceSequence = "MQIFVKTLTGKTITLEVEPSDTIENVKAKIQDKEGIPPDQQRLIFAGKQLEDGRTLSDYNIQKESTLHLVLRLRGG"

// Residues closer than this are treated as coincident; the steric term
// skips them rather than dividing by a near-zero separation.
const minSeparation = 0.01

// Status reports how a run ended.
type Status string

const (
	StatusConverged       Status = "converged"
	StatusBudgetExhausted Status = "budget_exhausted"
	StatusFailed          Status = "failed"
)

// Snapshot is a copy of the position array at one committed step.
type Snapshot struct {
	Step      int
	Positions []r3.Vec
}

// Result carries everything a caller needs after a run: the final (or
// last finite) position array, the per-step radius-of-gyration
// trajectory, and how the run terminated.
type Result struct {
	Positions []r3.Vec
	Rg        []float64
	Steps     int
	Status    Status
	Snapshots []Snapshot
}

// FinalRg returns the radius of gyration after the last committed step.
func (r *Result) FinalRg() float64 {
	if len(r.Rg) == 0 {
		return math.NaN()
	}
	return r.Rg[len(r.Rg)-1]
}

// Engine evolves one chain. Each Engine owns its position array
// outright, so independent runs (native vs scrambled, parameter
// sweeps) never share mutable state and are safe to execute in
// parallel at the run level.
type Engine struct {
	seq    string
	n      int
	params config.FoldParams

	field *mat.SymDense // read-only after New

	positions []r3.Vec
	forces    []r3.Vec // reused every step; scaled to displacements before commit
	rng       *rand.Rand
	step      int
}

// New validates the parameter bundle, derives the affinity field from
// the sequence (hydropathy signal -> Ricker convolution -> outer
// product) and lays the chain out straight along the X axis at the
// bond length, so the starting configuration is maximally extended and
// free of steric violations.
func New(seq string, params config.FoldParams) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(seq) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrSequenceTooShort, len(seq))
	}

	signal, err := hydropathy.Signal(seq)
	if err != nil {
		return nil, err
	}
	kernel, err := wavelet.Ricker(params.KernelWidth)
	if err != nil {
		return nil, err
	}
	response, err := wavelet.ConvolveSame(signal, kernel)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		seq:       seq,
		n:         len(seq),
		params:    params,
		field:     affinity.BuildField(response),
		positions: make([]r3.Vec, len(seq)),
		forces:    make([]r3.Vec, len(seq)),
		rng:       rand.New(rand.NewSource(params.Seed)),
	}
	for i := 1; i < e.n; i++ {
		e.positions[i] = r3.Vec{X: e.positions[i-1].X + params.BondLength}
	}
	return e, nil
}

// Sequence returns the chain this engine folds.
func (e *Engine) Sequence() string { return e.seq }

// Params returns the constraint bundle the engine was built with.
func (e *Engine) Params() config.FoldParams { return e.params }

// Field exposes the read-only affinity matrix (for inspection; the
// engine itself never mutates it).
func (e *Engine) Field() *mat.SymDense { return e.field }

// Positions returns a copy of the current position array.
func (e *Engine) Positions() []r3.Vec {
	return clonePositions(e.positions)
}

// Steps returns the number of fully-committed relaxation steps so far.
func (e *Engine) Steps() int { return e.step }

// Step advances the relaxation by one iteration and returns the
// maximum per-residue displacement it committed (jitter excluded, so
// the convergence signal stays meaningful at non-zero temperature).
//
// The three contributions accumulate additively into a reused force
// buffer in a fixed order (affinity, bonds, sterics), then the buffer
// is scaled by StepSize and committed in place. Displacements are
// checked for finiteness before the commit: a failing step leaves the
// position array at its last fully-committed state.
func (e *Engine) Step() (float64, error) {
	p := e.params
	for i := range e.forces {
		e.forces[i] = r3.Vec{}
	}

	// Topological attraction. Only pairs whose affinity clears the
	// contact threshold pull on each other, and only once they are
	// both distant along the chain and distant in space. Short-range
	// attraction is deliberately absent: packing at close range is the
	// steric term's job.
	for i := 0; i < e.n; i++ {
		for j := i + p.MinSequenceGap; j < e.n; j++ {
			a := e.field.At(i, j)
			if a <= p.ContactThreshold {
				continue
			}
			vec := r3.Sub(e.positions[j], e.positions[i])
			dist := r3.Norm(vec)
			if dist <= p.MinContactDistance {
				continue
			}
			pull := r3.Scale(a*p.AttractionStrength/dist, vec)
			e.forces[i] = r3.Add(e.forces[i], pull)
			e.forces[j] = r3.Sub(e.forces[j], pull)
		}
	}

	// Chain integrity. Adjacent pairs outside the tolerance band are
	// pulled back toward the target bond length, equal and opposite.
	for i := 0; i < e.n-1; i++ {
		vec := r3.Sub(e.positions[i+1], e.positions[i])
		dist := r3.Norm(vec)
		if dist < minSeparation {
			continue
		}
		dev := dist - p.BondLength
		if math.Abs(dev) <= p.BondTolerance {
			continue
		}
		corr := r3.Scale(p.BondStiffness*dev/dist, vec)
		e.forces[i] = r3.Add(e.forces[i], corr)
		e.forces[i+1] = r3.Sub(e.forces[i+1], corr)
	}

	// Steric exclusion. Non-adjacent pairs inside the exclusion radius
	// are pushed apart proportionally to overlap depth. The stiffness
	// is high enough that this dominates the attraction term at short
	// range, so interpenetration cannot persist.
	for i := 0; i < e.n; i++ {
		for j := i + 2; j < e.n; j++ {
			vec := r3.Sub(e.positions[i], e.positions[j])
			dist := r3.Norm(vec)
			if dist >= p.StericRadius || dist < minSeparation {
				continue
			}
			push := r3.Scale(p.StericStiffness*(p.StericRadius-dist)/dist, vec)
			e.forces[i] = r3.Add(e.forces[i], push)
			e.forces[j] = r3.Sub(e.forces[j], push)
		}
	}

	// Scale to displacements and guard before committing anything.
	maxDisp := 0.0
	for i := range e.forces {
		e.forces[i] = r3.Scale(p.StepSize, e.forces[i])
		next := r3.Add(e.positions[i], e.forces[i])
		if !finite(next) {
			return 0, fmt.Errorf("%w: residue %d at step %d", ErrNonFiniteState, i, e.step)
		}
		if m := r3.Norm(e.forces[i]); m > maxDisp {
			maxDisp = m
		}
	}

	for i := range e.positions {
		e.positions[i] = r3.Add(e.positions[i], e.forces[i])
	}
	if p.JitterAmplitude > 0 {
		for i := range e.positions {
			e.positions[i].X += e.rng.NormFloat64() * p.JitterAmplitude
			e.positions[i].Y += e.rng.NormFloat64() * p.JitterAmplitude
			e.positions[i].Z += e.rng.NormFloat64() * p.JitterAmplitude
		}
	}
	e.step++
	return maxDisp, nil
}

// Run iterates until convergence or the step budget is exhausted and
// returns the trajectory. Cancellation is coarse-grained: the context
// is only checked between steps, so the returned state is always the
// last fully-committed one. On ErrNonFiniteState the partial Result
// carries the last finite position array and is returned alongside
// the error.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	p := e.params
	res := &Result{
		Rg:     make([]float64, 0, p.MaxIterations),
		Status: StatusBudgetExhausted,
	}

	for e.step < p.MaxIterations {
		if err := ctx.Err(); err != nil {
			res.Positions = clonePositions(e.positions)
			res.Steps = e.step
			res.Status = StatusFailed
			return res, err
		}

		maxDisp, err := e.Step()
		if err != nil {
			res.Positions = clonePositions(e.positions)
			res.Steps = e.step
			res.Status = StatusFailed
			return res, err
		}

		res.Rg = append(res.Rg, RadiusOfGyration(e.positions))
		if p.SnapshotInterval > 0 && e.step%p.SnapshotInterval == 0 {
			res.Snapshots = append(res.Snapshots, Snapshot{
				Step:      e.step,
				Positions: clonePositions(e.positions),
			})
		}

		if maxDisp < p.ConvergenceThreshold {
			res.Status = StatusConverged
			break
		}
	}

	res.Positions = clonePositions(e.positions)
	res.Steps = e.step
	return res, nil
}

// Fold is the one-call convenience wrapper: build an engine for seq
// and run it to termination.
func Fold(ctx context.Context, seq string, params config.FoldParams) (*Result, error) {
	e, err := New(seq, params)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}

func clonePositions(src []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(src))
	copy(out, src)
	return out
}

func finite(v r3.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
