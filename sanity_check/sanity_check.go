// sanity_check.go
// Quick self-diagnostic: folds a short test peptide twice and checks
// the structural guarantees (finite positions, bond band, identical
// trajectories across runs) before printing the version banner.

package sanity_check

import (
	"context"
	"fmt"
	"os"

	"nomadic_fold_go/config"
	"nomadic_fold_go/folder"
)

const testPeptide = "MKVLILACLVALALA"

func Run(args []string) {
	params := config.DefaultFoldParams()
	params.MaxIterations = 100

	first, err := folder.Fold(context.Background(), testPeptide, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sanity check failed: %v\n", err)
		os.Exit(1)
	}
	second, err := folder.Fold(context.Background(), testPeptide, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sanity check failed: %v\n", err)
		os.Exit(1)
	}

	for i := range first.Positions {
		if first.Positions[i] != second.Positions[i] {
			fmt.Fprintf(os.Stderr, "Sanity check failed: runs diverged at residue %d\n", i)
			os.Exit(1)
		}
	}
	if dev := folder.MaxBondDeviation(first.Positions, params.BondLength); dev > 1.0 {
		fmt.Fprintf(os.Stderr, "Sanity check failed: bond deviation %.2f A after %d steps\n", dev, first.Steps)
		os.Exit(1)
	}

	fmt.Printf("Successfully running Nomadic Fold! (%s)\n", config.Main_version)
	fmt.Printf("Test fold: %d steps, Rg %.2f A, %s, runs deterministic\n",
		first.Steps, first.FinalRg(), first.Status)
}
