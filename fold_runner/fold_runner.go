// fold_runner.go
// Folds a single sequence and reports its compaction trajectory.
// Output options: step-by-step progress on stdout, a CSV of the Rg
// trajectory, an SVG/PNG trajectory plot, and a CA-trace PDB of the
// final chain.

package fold_runner

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"nomadic_fold_go/config"
	"nomadic_fold_go/folder"
	"nomadic_fold_go/pdb_export"
	"nomadic_fold_go/plotting"
	common "nomadic_fold_go/utils"
)

func Run(args []string) {

	// Gather Arguments
	fs := flag.NewFlagSet("fold", flag.ExitOnError)
	seq := fs.String("seq", "", "Amino acid sequence to fold (1-letter codes)")
	seqFile := fs.String("seq_file", "", "FASTA file; the first record is folded")
	scramble := fs.Bool("scramble", false, "Fold a scrambled permutation of the sequence instead")
	scrambleSeed := fs.Int64("scramble_seed", 42, "Seed for the scramble permutation")
	progressEvery := fs.Int("progress_every", 50, "Print Rg every k steps (0 silences progress)")
	outPDB := fs.String("out_pdb", "", "Write the final chain as a CA-trace PDB file")
	outPlot := fs.String("out_plot", "", "Write the Rg trajectory plot (.svg or .png)")
	outCSV := fs.String("out_csv", "", "Write the Rg trajectory as CSV")
	params := config.RegisterFoldFlags(fs)

	// Custom help screen
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Nomadic Fold | fold - Sequence Compaction Runner")
		fmt.Fprintln(os.Stderr, "---------------------------------------------")
		fmt.Fprintln(os.Stderr, "Usage: nomadic_fold fold [options]")
		fmt.Fprintln(os.Stderr, "\nInput (one required):")
		fmt.Fprintln(os.Stderr, "  -seq string               Amino acid sequence (1-letter codes)")
		fmt.Fprintln(os.Stderr, "  -seq_file string          FASTA file; first record is folded")
		fmt.Fprintln(os.Stderr, "\nOutput:")
		fmt.Fprintln(os.Stderr, "  -out_pdb string           Final chain as CA-trace PDB")
		fmt.Fprintln(os.Stderr, "  -out_plot string          Rg trajectory plot (.svg or .png)")
		fmt.Fprintln(os.Stderr, "  -out_csv string           Rg trajectory as CSV")
		fmt.Fprintln(os.Stderr, "  -progress_every int       Print Rg every k steps (default: 50)")
		fmt.Fprintln(os.Stderr, "\nControls:")
		fmt.Fprintln(os.Stderr, "  -scramble                 Fold a scrambled permutation instead")
		fmt.Fprintln(os.Stderr, "  -scramble_seed int        Seed for the permutation (default: 42)")
		fmt.Fprintln(os.Stderr, "\nConstraint parameters (defaults match the ubiquitin benchmark):")
		fmt.Fprintln(os.Stderr, "  -bond_length, -bond_tolerance, -steric_radius,")
		fmt.Fprintln(os.Stderr, "  -attraction_strength, -contact_threshold, -min_sequence_gap,")
		fmt.Fprintln(os.Stderr, "  -min_contact_distance, -bond_stiffness, -steric_stiffness,")
		fmt.Fprintln(os.Stderr, "  -step_size, -jitter, -seed, -max_iterations,")
		fmt.Fprintln(os.Stderr, "  -convergence_threshold, -kernel_width, -snapshot_every")
	}
	fs.Parse(args)

	sequence, label, err := resolveSequence(*seq, *seqFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *scramble {
		sequence = common.Scramble(sequence, *scrambleSeed)
		label += " (scrambled)"
	}

	fmt.Printf("--- FOLDING %s (%d residues) ---\n", label, len(sequence))

	engine, err := folder.New(sequence, *params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Initial Rg: %.2f A\n", folder.RadiusOfGyration(engine.Positions()))

	res, runErr := runWithProgress(engine, *progressEvery)
	if runErr != nil {
		if errors.Is(runErr, folder.ErrNonFiniteState) {
			fmt.Fprintf(os.Stderr, "Run failed: %v (last finite state at step %d)\n", runErr, res.Steps)
		} else {
			fmt.Fprintf(os.Stderr, "Run failed: %v\n", runErr)
		}
		os.Exit(1)
	}

	fmt.Printf("--- DONE after %d steps (%s) ---\n", res.Steps, res.Status)
	fmt.Printf("Final Radius of Gyration: %.2f A\n", res.FinalRg())

	if *outCSV != "" {
		if err := writeTrajectoryCSV(*outCSV, res.Rg); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Trajectory CSV written to", *outCSV)
	}
	if *outPlot != "" {
		series := []plotting.Series{{Name: label, Rg: res.Rg}}
		if err := plotting.SaveRgPlot(*outPlot, series, 12.0); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing plot: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Trajectory plot written to", *outPlot)
	}
	if *outPDB != "" {
		if err := pdb_export.WriteFile(*outPDB, sequence, res.Positions); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PDB: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("CA trace written to", *outPDB)
	}
}

// resolveSequence picks the sequence source: inline flag, FASTA file,
// or the built-in ubiquitin benchmark when neither is given.
func resolveSequence(seq, seqFile string) (string, string, error) {
	switch {
	case seq != "" && seqFile != "":
		return "", "", fmt.Errorf("use either -seq or -seq_file, not both")
	case seq != "":
		if err := common.ValidateSequence(seq); err != nil {
			return "", "", err
		}
		return seq, "input sequence", nil
	case seqFile != "":
		id, s, err := common.ReadFirstFasta(seqFile)
		if err != nil {
			return "", "", err
		}
		if err := common.ValidateSequence(s); err != nil {
			return "", "", fmt.Errorf("record %s: %w", id, err)
		}
		return s, id, nil
	default:
		return folder.ReferenceSequence, "UBIQUITIN", nil
	}
}

// runWithProgress drives the engine step by step so progress can be
// reported, mirroring what Run does internally.
func runWithProgress(e *folder.Engine, every int) (*folder.Result, error) {
	if every <= 0 {
		return e.Run(context.Background())
	}

	p := e.Params()
	res := &folder.Result{Status: folder.StatusBudgetExhausted}
	for e.Steps() < p.MaxIterations {
		maxDisp, err := e.Step()
		if err != nil {
			res.Positions = e.Positions()
			res.Steps = e.Steps()
			res.Status = folder.StatusFailed
			return res, err
		}
		rg := folder.RadiusOfGyration(e.Positions())
		res.Rg = append(res.Rg, rg)
		if p.SnapshotInterval > 0 && e.Steps()%p.SnapshotInterval == 0 {
			res.Snapshots = append(res.Snapshots, folder.Snapshot{Step: e.Steps(), Positions: e.Positions()})
		}
		if (e.Steps()-1)%every == 0 {
			fmt.Printf("Step %d: Rg = %.2f A\n", e.Steps()-1, rg)
		}
		if maxDisp < p.ConvergenceThreshold {
			res.Status = folder.StatusConverged
			break
		}
	}
	res.Positions = e.Positions()
	res.Steps = e.Steps()
	return res, nil
}

func writeTrajectoryCSV(path string, rg []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"step", "rg"}); err != nil {
		return err
	}
	for i, v := range rg {
		if err := w.Write([]string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 4, 64)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
