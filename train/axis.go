package train

// AxisAllocator issues shaft/axis identifiers across an entire search run.
//
// The axis sequence is deliberately shared between designs: the first shaft
// of one accepted design continues the numbering where the previous accepted
// design stopped. Builds work against a local cursor seeded from Current and
// call Commit only on acceptance, so rejected combinations never consume
// axis numbers and reproducibility is independent of how many candidates
// were rejected in between.
//
// Any parallel re-implementation of the search must either serialize Commit
// calls in acceptance order or renumber axes in a final sequential pass;
// the allocator itself is not safe for concurrent use.
type AxisAllocator struct {
	current int
}

// firstAxis is where shaft numbering starts for a fresh run.
const firstAxis = 1

// NewAxisAllocator returns an allocator positioned at axis 1.
func NewAxisAllocator() *AxisAllocator {
	return &AxisAllocator{current: firstAxis}
}

// Current returns the axis number the next build should start from.
func (a *AxisAllocator) Current() int { return a.current }

// Commit records the final axis cursor of an accepted design. Values below
// the current position are ignored, keeping the sequence monotonic.
func (a *AxisAllocator) Commit(v int) {
	if v > a.current {
		a.current = v
	}
}
