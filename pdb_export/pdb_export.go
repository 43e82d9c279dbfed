// pdb_export.go
// Writes the final chain as a CA-only PDB trace so folds can be opened
// in standard structure viewers. The export is a deterministic
// re-serialization of the sequence plus the position array; nothing is
// recomputed or smoothed on the way out.

package pdb_export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	common "nomadic_fold_go/utils"
)

// WriteTo writes one ATOM record per residue (CA atoms, chain A,
// fixed-width PDB columns), then TER and END.
func WriteTo(w io.Writer, seq string, positions []r3.Vec) error {
	if len(seq) != len(positions) {
		return fmt.Errorf("pdb_export: sequence length %d does not match position count %d", len(seq), len(positions))
	}
	if len(seq) == 0 {
		return fmt.Errorf("pdb_export: empty chain")
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < len(seq); i++ {
		name := common.ThreeLetterCode(seq[i])
		_, err := fmt.Fprintf(bw, "ATOM  %5d  CA  %3s A%4d    %8.3f%8.3f%8.3f  1.00  0.00           C\n",
			i+1, name, i+1, positions[i].X, positions[i].Y, positions[i].Z)
		if err != nil {
			return err
		}
	}
	last := len(seq)
	if _, err := fmt.Fprintf(bw, "TER   %5d      %3s A%4d\n", last+1, common.ThreeLetterCode(seq[last-1]), last); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, "END"); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes the CA trace to path, creating or truncating it.
func WriteFile(path, seq string, positions []r3.Vec) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdb_export: %w", err)
	}
	defer f.Close()

	return WriteTo(f, seq, positions)
}
