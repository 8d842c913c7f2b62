package ratio

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for ratio-space construction.
var (
	// ErrBadTeethRange indicates zMin < 1 or zMax < zMin.
	ErrBadTeethRange = errors.New("ratio: teeth range must satisfy 1 <= zMin <= zMax")

	// ErrBadResolution indicates a decimal-place count outside [MinPlaces, MaxPlaces].
	ErrBadResolution = errors.New("ratio: resolution out of range")
)

// Resolution bounds for Space.
const (
	// DefaultPlaces is the default rounding resolution (one decimal place),
	// matching the classic coarsening of the design search.
	DefaultPlaces = 1

	// MinPlaces is the finest-grained lower bound on resolution.
	MinPlaces = 1

	// MaxPlaces caps resolution; beyond six places the power-of-ten
	// denominator no longer fits comfortably and the search space explodes.
	MaxPlaces = 6
)

// Ratio is a single-stage transmission ratio as an exact rational
// num/10^places. The zero value is the (meaningless) ratio 0/10.
//
// Ratios constructed by Space share one denominator, so ordering and
// equality reduce to integer comparison of the numerators.
type Ratio struct {
	num int64 // numerator
	den int64 // denominator, always a positive power of ten
}

// Float returns the ratio as a float64.
func (r Ratio) Float() float64 { return float64(r.num) / float64(r.den) }

// Num returns the numerator.
func (r Ratio) Num() int64 { return r.num }

// Den returns the power-of-ten denominator.
func (r Ratio) Den() int64 { return r.den }

// Less reports whether r < other by numeric value.
func (r Ratio) Less(other Ratio) bool {
	// Same denominator (the common case from one Space call): integer compare.
	if r.den == other.den {
		return r.num < other.num
	}
	// Cross-resolution compare: a/b < c/d  ⇔  a·d < c·b (all positive dens).
	return r.num*other.den < other.num*r.den
}

// String renders the decimal form, e.g. "2.3" for 23/10.
func (r Ratio) String() string {
	places := 0
	for d := r.den; d > 1; d /= 10 {
		places++
	}

	return fmt.Sprintf("%.*f", places, r.Float())
}

// FromFloat returns the Ratio nearest to v at the given resolution in
// decimal places. Useful for building custom ratio spaces; Space rounds
// the same way. Errors: ErrBadResolution for places outside
// [MinPlaces, MaxPlaces].
func FromFloat(v float64, places int) (Ratio, error) {
	if places < MinPlaces || places > MaxPlaces {
		return Ratio{}, ErrBadResolution
	}
	var den int64 = 1
	for i := 0; i < places; i++ {
		den *= 10
	}

	return round(v, den), nil
}

// round builds the Ratio nearest to v at the given power-of-ten denominator.
// Half-way cases round away from zero (math.Round).
func round(v float64, den int64) Ratio {
	return Ratio{num: int64(math.Round(v * float64(den))), den: den}
}
