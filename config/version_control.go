package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Fold_Runner    = "v1.0.0"
	Compare_Runner = "v1.0.0"
	Param_Sweep    = "v0.2.0"
	Sanity_check   = "v1.0.0"
	Benchmark      = "v1.0.0"
	PDB_Export     = "v1.0.0"
)
