// sweep.go
// Sweeps one constraint parameter across a range and folds the same
// sequence once per value. Runs are fully independent (each engine
// owns its own arrays), so they execute on a worker pool; results are
// reported in sweep order regardless of completion order.

package sweep

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"

	"nomadic_fold_go/config"
	"nomadic_fold_go/folder"
	common "nomadic_fold_go/utils"
)

// RunResult is one sweep point: the parameter value tried and how the
// fold ended.
type RunResult struct {
	Value   float64
	FinalRg float64
	Steps   int
	Status  folder.Status
	Err     error
}

func Run(args []string) {

	// Gather Arguments
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	seq := fs.String("seq", "", "Amino acid sequence (default: ubiquitin benchmark)")
	seqFile := fs.String("seq_file", "", "FASTA file; the first record is used")
	param := fs.String("param", "attraction_strength", "Parameter to sweep")
	from := fs.Float64("from", 0.001, "First value of the sweep")
	to := fs.Float64("to", 0.01, "Last value of the sweep")
	points := fs.Int("points", 10, "Number of sweep points")
	workers := fs.Int("workers", runtime.NumCPU(), "Parallel fold runs")
	outCSV := fs.String("out_csv", "", "Write the sweep summary as CSV")
	dbPath := fs.String("db", "", "Append results to a SQLite database")
	params := config.RegisterFoldFlags(fs)

	// Custom help screen
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Nomadic Fold | sweep - Constraint Parameter Sweep")
		fmt.Fprintln(os.Stderr, "---------------------------------------------")
		fmt.Fprintln(os.Stderr, "Usage: nomadic_fold sweep [options]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		fmt.Fprintln(os.Stderr, "  -seq string               Sequence (default: ubiquitin benchmark)")
		fmt.Fprintln(os.Stderr, "  -seq_file string          FASTA file; first record is used")
		fmt.Fprintln(os.Stderr, "  -param string             Parameter to sweep (default: attraction_strength)")
		fmt.Fprintln(os.Stderr, "  -from float               First value")
		fmt.Fprintln(os.Stderr, "  -to float                 Last value")
		fmt.Fprintln(os.Stderr, "  -points int               Number of sweep points (default: 10)")
		fmt.Fprintln(os.Stderr, "  -workers int              Parallel runs (default: CPU count)")
		fmt.Fprintln(os.Stderr, "  -out_csv string           Sweep summary CSV")
		fmt.Fprintln(os.Stderr, "  -db string                SQLite database for accumulated results")
		fmt.Fprintln(os.Stderr, "\nSweepable parameters:")
		fmt.Fprintln(os.Stderr, "  bond_length, bond_tolerance, steric_radius, attraction_strength,")
		fmt.Fprintln(os.Stderr, "  contact_threshold, min_contact_distance, bond_stiffness,")
		fmt.Fprintln(os.Stderr, "  steric_stiffness, step_size, jitter, convergence_threshold,")
		fmt.Fprintln(os.Stderr, "  kernel_width, max_iterations")
	}
	fs.Parse(args)

	sequence := folder.ReferenceSequence
	switch {
	case *seq != "" && *seqFile != "":
		fmt.Fprintln(os.Stderr, "Error: use either -seq or -seq_file, not both")
		os.Exit(1)
	case *seq != "":
		sequence = *seq
	case *seqFile != "":
		_, s, err := common.ReadFirstFasta(*seqFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sequence = s
	}
	if err := common.ValidateSequence(sequence); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *points < 2 {
		fmt.Fprintln(os.Stderr, "Error: -points must be at least 2")
		os.Exit(1)
	}
	if _, err := applyParam(*params, *param, *from); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	values := make([]float64, *points)
	step := (*to - *from) / float64(*points-1)
	for i := range values {
		values[i] = *from + float64(i)*step
	}

	fmt.Printf("--- SWEEP %s over [%g, %g] in %d points (%d residues) ---\n",
		*param, *from, *to, *points, len(sequence))

	results := runSweep(sequence, *params, *param, values, *workers)

	fmt.Printf("%12s %10s %8s  %s\n", *param, "Final Rg", "Steps", "Status")
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%12g %10s %8s  error: %v\n", r.Value, "-", "-", r.Err)
			continue
		}
		fmt.Printf("%12g %10.2f %8d  %s\n", r.Value, r.FinalRg, r.Steps, r.Status)
	}

	if *outCSV != "" {
		if err := writeSweepCSV(*outCSV, *param, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Sweep CSV written to", *outCSV)
	}
	if *dbPath != "" {
		store := NewSQLiteStore(*dbPath)
		ctx := context.Background()
		if err := store.Init(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.SaveSweep(ctx, sequence, *param, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Results appended to", *dbPath)
	}
}

// runSweep folds one engine per value on a bounded worker pool.
func runSweep(sequence string, base config.FoldParams, name string, values []float64, workers int) []RunResult {
	if workers < 1 {
		workers = 1
	}

	type job struct {
		idx   int
		value float64
	}
	jobs := make(chan job, workers*2)
	results := make([]RunResult, len(values))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				p, err := applyParam(base, name, j.value)
				if err != nil {
					results[j.idx] = RunResult{Value: j.value, Err: err}
					continue
				}
				res, err := folder.Fold(context.Background(), sequence, p)
				if err != nil {
					results[j.idx] = RunResult{Value: j.value, Err: err}
					continue
				}
				results[j.idx] = RunResult{
					Value:   j.value,
					FinalRg: res.FinalRg(),
					Steps:   res.Steps,
					Status:  res.Status,
				}
			}
		}()
	}

	for i, v := range values {
		jobs <- job{idx: i, value: v}
	}
	close(jobs)
	wg.Wait()
	return results
}

// applyParam returns a copy of base with the named parameter set.
// Integer parameters are rounded from the sweep value.
func applyParam(base config.FoldParams, name string, value float64) (config.FoldParams, error) {
	p := base
	switch name {
	case "bond_length":
		p.BondLength = value
	case "bond_tolerance":
		p.BondTolerance = value
	case "steric_radius":
		p.StericRadius = value
	case "attraction_strength":
		p.AttractionStrength = value
	case "contact_threshold":
		p.ContactThreshold = value
	case "min_contact_distance":
		p.MinContactDistance = value
	case "bond_stiffness":
		p.BondStiffness = value
	case "steric_stiffness":
		p.StericStiffness = value
	case "step_size":
		p.StepSize = value
	case "jitter":
		p.JitterAmplitude = value
	case "convergence_threshold":
		p.ConvergenceThreshold = value
	case "kernel_width":
		p.KernelWidth = int(value + 0.5)
	case "max_iterations":
		p.MaxIterations = int(value + 0.5)
	default:
		return p, fmt.Errorf("unknown sweep parameter %q", name)
	}
	return p, p.Validate()
}

func writeSweepCSV(path, param string, results []RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{param, "final_rg", "steps", "status"}); err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			if err := w.Write([]string{strconv.FormatFloat(r.Value, 'g', -1, 64), "", "", "error: " + r.Err.Error()}); err != nil {
				return err
			}
			continue
		}
		row := []string{
			strconv.FormatFloat(r.Value, 'g', -1, 64),
			strconv.FormatFloat(r.FinalRg, 'f', 4, 64),
			strconv.Itoa(r.Steps),
			string(r.Status),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
