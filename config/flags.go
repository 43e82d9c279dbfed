package config

import "flag"

// RegisterFoldFlags wires every FoldParams field into a tool's flag
// set, seeded with the reference defaults, and returns the bundle the
// parsed values land in. Each tool calls this so the parameter surface
// stays identical across fold, compare and sweep.
func RegisterFoldFlags(fs *flag.FlagSet) *FoldParams {
	p := DefaultFoldParams()
	fs.Float64Var(&p.BondLength, "bond_length", p.BondLength, "Target C-alpha bond length (Angstroms)")
	fs.Float64Var(&p.BondTolerance, "bond_tolerance", p.BondTolerance, "Allowed deviation around the bond length")
	fs.Float64Var(&p.StericRadius, "steric_radius", p.StericRadius, "Steric exclusion radius (Angstroms)")
	fs.Float64Var(&p.AttractionStrength, "attraction_strength", p.AttractionStrength, "Scaling of the affinity attraction term")
	fs.Float64Var(&p.ContactThreshold, "contact_threshold", p.ContactThreshold, "Minimum affinity for an attractive contact")
	fs.IntVar(&p.MinSequenceGap, "min_sequence_gap", p.MinSequenceGap, "Minimum chain separation for attraction")
	fs.Float64Var(&p.MinContactDistance, "min_contact_distance", p.MinContactDistance, "Minimum spatial separation for attraction")
	fs.Float64Var(&p.BondStiffness, "bond_stiffness", p.BondStiffness, "Bond correction stiffness")
	fs.Float64Var(&p.StericStiffness, "steric_stiffness", p.StericStiffness, "Steric repulsion stiffness")
	fs.Float64Var(&p.StepSize, "step_size", p.StepSize, "Damping factor applied to each step's displacement")
	fs.Float64Var(&p.JitterAmplitude, "jitter", p.JitterAmplitude, "Thermal jitter amplitude per axis (0 disables)")
	fs.Int64Var(&p.Seed, "seed", p.Seed, "Seed for the jitter source")
	fs.IntVar(&p.MaxIterations, "max_iterations", p.MaxIterations, "Relaxation step budget")
	fs.Float64Var(&p.ConvergenceThreshold, "convergence_threshold", p.ConvergenceThreshold, "Max per-residue displacement considered settled")
	fs.IntVar(&p.KernelWidth, "kernel_width", p.KernelWidth, "Wavelet coherence length in residues (odd)")
	fs.IntVar(&p.SnapshotInterval, "snapshot_every", p.SnapshotInterval, "Record positions every k steps (0 disables)")
	return &p
}
