package combin

import (
	"errors"

	"github.com/konbassmio/gearbox/ratio"
)

// Sentinel errors for the combination search.
var (
	// ErrBadTarget indicates a non-positive target ratio.
	ErrBadTarget = errors.New("combin: target ratio must be positive")

	// ErrBadTolerance indicates a negative tolerance fraction.
	ErrBadTolerance = errors.New("combin: tolerance must be non-negative")

	// ErrBadLengthRange indicates MinLength < 1 or MaxLength < MinLength.
	ErrBadLengthRange = errors.New("combin: length range must satisfy 1 <= min <= max")

	// ErrBadCap indicates a negative per-length cap.
	ErrBadCap = errors.New("combin: per-length cap must be non-negative")

	// ErrEmptySpace indicates an empty ratio space.
	ErrEmptySpace = errors.New("combin: ratio space is empty")

	// ErrUnsortedSpace indicates a ratio space not sorted ascending.
	ErrUnsortedSpace = errors.New("combin: ratio space must be sorted ascending")
)

const (
	// DefaultMaxPerLength caps the accepted combinations per stage count.
	// Candidates past the cap for a given length are never considered.
	DefaultMaxPerLength = 10000

	// BandFloor is the absolute floor of the band's lower bound, guarding
	// against degenerate near-zero targets.
	BandFloor = 0.1
)

// Options configures the combination search.
//
//   - Target       — target overall ratio (> 0).
//   - Tolerance    — relative tolerance as a fraction (0.05 ⇒ ±5%).
//   - MinLength    — minimum stage count (≥ 1).
//   - MaxLength    — maximum stage count (≥ MinLength).
//   - MaxPerLength — accepted-combination cap per stage count
//     (0 ⇒ DefaultMaxPerLength).
type Options struct {
	Target       float64 // target overall ratio
	Tolerance    float64 // relative tolerance fraction
	MinLength    int     // minimum stages per combination
	MaxLength    int     // maximum stages per combination
	MaxPerLength int     // per-length acceptance cap (0 = default)
}

// validate checks option consistency. Sentinels only, O(1).
func (o Options) validate() error {
	if o.Target <= 0 {
		return ErrBadTarget
	}
	if o.Tolerance < 0 {
		return ErrBadTolerance
	}
	if o.MinLength < 1 || o.MaxLength < o.MinLength {
		return ErrBadLengthRange
	}
	if o.MaxPerLength < 0 {
		return ErrBadCap
	}

	return nil
}

// cap returns the effective per-length cap.
func (o Options) cap() int {
	if o.MaxPerLength == 0 {
		return DefaultMaxPerLength
	}

	return o.MaxPerLength
}

// Combination is one accepted multiset of stage ratios.
type Combination struct {
	// Product is the float product of Ratios, as evaluated during search.
	Product float64

	// Ratios holds the stage target ratios in non-decreasing order.
	Ratios []ratio.Ratio
}
