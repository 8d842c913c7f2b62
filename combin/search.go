package combin

import "github.com/konbassmio/gearbox/ratio"

// Band returns the inclusive acceptance band [lower, upper] for the target
// and tolerance: lower = max(BandFloor, target·(1−tol)), upper = target·(1+tol).
//
// Complexity: O(1).
func Band(target, tolerance float64) (lower, upper float64) {
	lower = target * (1 - tolerance)
	if lower < BandFloor {
		lower = BandFloor
	}
	upper = target * (1 + tolerance)

	return lower, upper
}

// Combinations enumerates all ratio multisets of length MinLength..MaxLength
// whose product lies in the acceptance band, in per-length lexicographic
// order over the sorted space, capped at MaxPerLength accepted combinations
// per length.
//
// Contracts:
//   - space must be non-empty and sorted ascending (ErrEmptySpace /
//     ErrUnsortedSpace otherwise).
//   - opts is validated first; see the sentinels in types.go.
//
// Complexity: O(C(n+L−1, L)) multisets per length L in the worst case;
// monotone subtree pruning typically cuts this by orders of magnitude
// without changing the output.
func Combinations(space []ratio.Ratio, opts Options) ([]Combination, error) {
	// Stage 1: validation.
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(space) == 0 {
		return nil, ErrEmptySpace
	}
	for i := 1; i < len(space); i++ {
		if space[i].Less(space[i-1]) {
			return nil, ErrUnsortedSpace
		}
	}

	lower, upper := Band(opts.Target, opts.Tolerance)
	rMax := space[len(space)-1].Float()

	// Stage 2: per-length enumeration, each length independent and capped.
	var out []Combination
	e := enumerator{
		space: space,
		lower: lower,
		upper: upper,
		rMax:  rMax,
	}
	for length := opts.MinLength; length <= opts.MaxLength; length++ {
		e.stack = make([]ratio.Ratio, 0, length)
		e.left = opts.cap()
		e.emit = func(product float64, ratios []ratio.Ratio) {
			combo := Combination{Product: product, Ratios: make([]ratio.Ratio, len(ratios))}
			copy(combo.Ratios, ratios)
			out = append(out, combo)
		}
		e.descend(0, 1.0, length)
	}

	return out, nil
}

// enumerator carries the shared state of one Combinations call.
// A dedicated struct (rather than closures over loose locals) keeps the
// hot-path state explicit and the recursion signature small.
type enumerator struct {
	space        []ratio.Ratio // sorted ascending
	lower, upper float64       // acceptance band
	rMax         float64       // largest ratio in space

	stack []ratio.Ratio                          // current prefix
	left  int                                    // remaining acceptance budget for this length
	emit  func(product float64, rs []ratio.Ratio) // acceptance sink
}

// descend extends the current prefix (product so far = prefix) with ratios
// from index start onward until remaining slots hit zero.
//
// Pruning invariants (float multiplication of positive values is monotone):
//   - filling every remaining slot with space[j] gives the subtree minimum
//     for the child starting at j; once it exceeds upper, later j only grow,
//     so the whole loop stops.
//   - filling every remaining slot after space[j] with rMax gives the
//     subtree maximum; below lower, the child holds nothing acceptable.
//
// Both bounds are evaluated with the same left-to-right multiplies as the
// enumeration itself, so no accepted combination is ever skipped.
func (e *enumerator) descend(start int, prefix float64, remaining int) {
	if e.left <= 0 {
		return
	}
	if remaining == 0 {
		if e.lower <= prefix && prefix <= e.upper {
			e.emit(prefix, e.stack)
			e.left--
		}

		return
	}

	var (
		j    int     // candidate index
		p    float64 // prefix extended by space[j]
		low  float64 // subtree minimum product
		high float64 // subtree maximum product
		k    int     // slot counter for bound evaluation
	)
	for j = start; j < len(e.space); j++ {
		p = prefix * e.space[j].Float()

		// Subtree minimum: all remaining slots at space[j].
		low = p
		for k = 1; k < remaining; k++ {
			low *= e.space[j].Float()
		}
		if low > e.upper {
			// Larger j only push the minimum higher.
			return
		}

		// Subtree maximum: all remaining slots at rMax.
		high = p
		for k = 1; k < remaining; k++ {
			high *= e.rMax
		}
		if high < e.lower {
			continue
		}

		e.stack = append(e.stack, e.space[j])
		e.descend(j, p, remaining-1)
		e.stack = e.stack[:len(e.stack)-1]

		if e.left <= 0 {
			return
		}
	}
}
