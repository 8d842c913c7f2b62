package gear

// SolutionSet is the ordered collection of accepted designs.
//
// Insertion order equals discovery order, and the set refuses additions once
// the configured capacity is reached. A capacity of 0 means "unbounded".
//
// SolutionSet is not safe for concurrent use; the search pipeline is strictly
// sequential by design (axis numbering depends on acceptance order).
type SolutionSet struct {
	cap     int
	designs []Design
}

// NewSolutionSet returns an empty set capped at cap accepted designs
// (0 ⇒ unbounded). A negative cap yields ErrNegativeCapacity.
func NewSolutionSet(cap int) (*SolutionSet, error) {
	if cap < 0 {
		return nil, ErrNegativeCapacity
	}

	return &SolutionSet{cap: cap}, nil
}

// Add appends d and reports whether it was accepted.
// Returns false (and leaves the set unchanged) when the set is full.
func (s *SolutionSet) Add(d Design) bool {
	if s.Full() {
		return false
	}
	s.designs = append(s.designs, d)

	return true
}

// Len returns the number of accepted designs.
func (s *SolutionSet) Len() int { return len(s.designs) }

// Full reports whether the capacity has been reached (never true for cap 0).
func (s *SolutionSet) Full() bool {
	return s.cap > 0 && len(s.designs) >= s.cap
}

// Cap returns the configured capacity (0 ⇒ unbounded).
func (s *SolutionSet) Cap() int { return s.cap }

// Designs returns the accepted designs in discovery order.
// The returned slice is the set's backing storage; callers must treat it as
// read-only.
func (s *SolutionSet) Designs() []Design { return s.designs }
