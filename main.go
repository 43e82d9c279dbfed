package main

import (
	"fmt"
	"os"
	"strings"

	"nomadic_fold_go/benchmark"
	"nomadic_fold_go/compare_runner"
	"nomadic_fold_go/config"
	"nomadic_fold_go/fold_runner"
	"nomadic_fold_go/sanity_check"
	"nomadic_fold_go/sweep"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Nomadic Fold - Custom Help Menu
Usage:
  nomadic_fold <tool> [options]

Tools:
  fold			Fold one sequence and report its compaction
  compare		Native vs scrambled ablation benchmark
  sweep			Sweep one constraint parameter across a range
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Nomadic Fold - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tNomadic Fold:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tFold Runner:\t\t%s\n", config.Fold_Runner)
	fmt.Printf("\tCompare Runner:\t\t%s\n", config.Compare_Runner)
	fmt.Printf("\tParameter Sweep:\t%s\n", config.Param_Sweep)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tPDB Export:\t\t%s\n", config.PDB_Export)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "fold":
			fold_runner.Run(cleanedArgs)
		case "compare":
			compare_runner.Run(cleanedArgs)
		case "sweep":
			sweep.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("nomadic_fold %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
