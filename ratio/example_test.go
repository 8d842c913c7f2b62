// Package ratio_test provides runnable examples for the ratio-space
// enumeration, executable via "go test -run Example".
package ratio_test

import (
	"fmt"

	"github.com/konbassmio/gearbox/ratio"
)

// ExampleSpace enumerates every achievable single-stage ratio for gears
// carrying 10..12 teeth at the default one-decimal resolution.
func ExampleSpace() {
	// 1) Build the space: all z2/z1 quotients, rounded, deduplicated, sorted.
	space, err := ratio.Space(10, 12, ratio.DefaultPlaces)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Nine teeth pairs collapse into five distinct coarse ratios.
	for _, r := range space {
		fmt.Printf("%s ", r)
	}
	fmt.Println()
	// Output: 0.8 0.9 1.0 1.1 1.2
}
