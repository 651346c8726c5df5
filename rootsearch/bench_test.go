package rootsearch_test

import (
	"testing"

	"github.com/katalvlaran/dualroot/rootsearch"
)

// sinkResult keeps the compiler from eliding benchmark bodies.
var sinkResult rootsearch.Result[float64]

// benchmarkSearch runs one full scan-and-refine pipeline per iteration.
func benchmarkSearch(b *testing.B, opts rootsearch.Options[float64]) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		res, err := rootsearch.Search(sine, opts) // full hunt per iteration
		if err != nil {
			b.Fatalf("Search failed: %v", err) // report and stop on error
		}
		sinkResult = res
	}
}

// BenchmarkSearch_Sine measures the default sequential hunt (3 roots).
func BenchmarkSearch_Sine(b *testing.B) {
	benchmarkSearch(b, rootsearch.DefaultOptions(-5.0, 5.0))
}

// BenchmarkSearch_Wide measures a wider sequential hunt (7 roots).
func BenchmarkSearch_Wide(b *testing.B) {
	benchmarkSearch(b, rootsearch.DefaultOptions(-10.0, 10.0))
}

// BenchmarkSearch_WideParallel runs the same 7-root hunt on four workers.
func BenchmarkSearch_WideParallel(b *testing.B) {
	opts := rootsearch.DefaultOptions(-10.0, 10.0)
	opts.Workers = 4
	benchmarkSearch(b, opts)
}

// BenchmarkSearch_Res10000 stresses the scan phase with a 10× finer sweep.
func BenchmarkSearch_Res10000(b *testing.B) {
	opts := rootsearch.DefaultOptions(-5.0, 5.0)
	opts.Resolution = 10000
	benchmarkSearch(b, opts)
}
