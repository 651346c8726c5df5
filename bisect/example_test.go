package bisect_test

import (
	"fmt"

	"github.com/katalvlaran/dualroot/bisect"
	"github.com/katalvlaran/dualroot/dual"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleScan
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Sweep sin over [−5,5] with the default resolution of 1000.  The three
//	roots −π, 0 and π each land in one sub-interval-wide bracket.
//
// Use case:
//
//	The bracketing stage before Newton refinement; each bracket is a
//	guaranteed sign change for the refiner to work inside.
//
// Complexity: O(Resolution) evaluations
func ExampleScan() {
	f := func(x dual.Number[float64]) dual.Number[float64] {
		return x.Sin()
	}

	brackets, err := bisect.Scan(f, bisect.DefaultOptions(-5.0, 5.0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("brackets=%d\n", len(brackets))
	for _, br := range brackets {
		fmt.Printf("[%.2f %.2f]\n", br.Lower, br.Upper)
	}
	// Output:
	// brackets=3
	// [-3.15 -3.14]
	// [-0.01 0.00]
	// [3.14 3.15]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleScan_empty
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	x²+1 never crosses zero: the scan legitimately returns nothing.
//
// Use case:
//
//	Distinguish "no roots detected" (empty result, nil error) from a
//	misconfigured call (sentinel error).
//
// Complexity: O(Resolution) evaluations
func ExampleScan_empty() {
	f := func(x dual.Number[float64]) dual.Number[float64] {
		return x.Mul(x).Shift(1)
	}

	brackets, err := bisect.Scan(f, bisect.DefaultOptions(-2.0, 2.0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("brackets:", len(brackets))
	// Output:
	// brackets: 0
}
