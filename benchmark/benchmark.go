// benchmark.go
// A reusable benchmarking module for Nomadic Fold.
// Wraps any tool run and reports wall time and memory behaviour, so
// relaxation performance can be compared across sequences and
// parameter settings without external profilers.

package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// Run wraps a function, measures it, and returns the elapsed wall time.
func Run(label string, f func()) time.Duration {
	fmt.Printf("[Benchmark] Running: %s\n", label)
	fmt.Println("[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Println("[Benchmark] Hostname:", host)
	}
	fmt.Println("[Benchmark] Go Version:", runtime.Version())
	fmt.Printf("[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	fmt.Printf("[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Printf("[Benchmark] Memory Used: %.2f MB\n", float64(memEnd.Alloc-memStart.Alloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Peak Heap: %.2f MB\n", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Printf("[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Printf("[Benchmark] Goroutines: %d -> %d\n", startGoroutines, runtime.NumGoroutine())
	fmt.Println("[Benchmark] ----------------------------------------")
	return elapsed
}
