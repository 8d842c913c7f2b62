package train

import (
	"errors"
	"fmt"

	"github.com/konbassmio/gearbox/gear"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadSolutionCap indicates a non-positive maximum solution count.
	ErrBadSolutionCap = errors.New("train: max solutions must be positive")

	// ErrBadTarget indicates a non-positive target overall ratio.
	ErrBadTarget = errors.New("train: target ratio must be positive")

	// ErrBadTolerance indicates a negative tolerance fraction.
	ErrBadTolerance = errors.New("train: tolerance must be non-negative")

	// ErrBadStageRange indicates MinStages < 1 or MaxStages < MinStages.
	ErrBadStageRange = errors.New("train: stage range must satisfy 1 <= min <= max")

	// ErrBadTeethRange indicates ZMin < 1 or ZMax < ZMin.
	ErrBadTeethRange = errors.New("train: teeth range must satisfy 1 <= zMin <= zMax")

	// ErrBadTorque indicates a non-positive input torque.
	ErrBadTorque = errors.New("train: input torque must be positive")

	// ErrBadStrength indicates a non-positive shear or tensile strength.
	ErrBadStrength = errors.New("train: material strengths must be positive")

	// ErrEmptyCombination indicates a combination with no stages was passed
	// to Builder.Build.
	ErrEmptyCombination = errors.New("train: combination has no stages")
)

// nmmPerNm converts the externally supplied input torque (N·m) into the
// N·mm used throughout the engine and the sizing formula.
const nmmPerNm = 1000.0

// Config holds every parameter of one design search.
//
// All torques enter in N·m and are converted to N·mm internally; strengths
// are MPa. Tolerance is a fraction (0.05 ⇒ ±5%), not a percentage — CLI
// layers convert user-facing percentages before building a Config.
type Config struct {
	// MaxSolutions caps the number of accepted designs (> 0).
	MaxSolutions int

	// TargetRatio is the desired overall speed ratio (> 0).
	TargetRatio float64

	// Tolerance is the relative tolerance fraction on the overall ratio (≥ 0).
	Tolerance float64

	// MinStages and MaxStages bound the stage count (1 ≤ min ≤ max).
	MinStages int
	MaxStages int

	// ZMin and ZMax bound every gear's teeth count (1 ≤ min ≤ max).
	ZMin int
	ZMax int

	// InputTorqueNm is the torque delivered into the first stage, in N·m (> 0).
	InputTorqueNm float64

	// ShearMPa (τ) and TensileMPa (σ) feed the module-sizing formula (> 0).
	ShearMPa   float64
	TensileMPa float64

	// RatioPlaces is the ratio-space rounding resolution in decimal places
	// (0 ⇒ ratio.DefaultPlaces). Finer resolution grows the combination
	// space combinatorially.
	RatioPlaces int

	// MaxPerLength caps accepted combinations per stage count
	// (0 ⇒ combin.DefaultMaxPerLength).
	MaxPerLength int
}

// Validate checks the configuration field groups in declaration order and
// returns the first violated sentinel.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.MaxSolutions <= 0 {
		return ErrBadSolutionCap
	}
	if c.TargetRatio <= 0 {
		return ErrBadTarget
	}
	if c.Tolerance < 0 {
		return ErrBadTolerance
	}
	if c.MinStages < 1 || c.MaxStages < c.MinStages {
		return ErrBadStageRange
	}
	if c.ZMin < 1 || c.ZMax < c.ZMin {
		return ErrBadTeethRange
	}
	if c.InputTorqueNm <= 0 {
		return ErrBadTorque
	}
	if c.ShearMPa <= 0 || c.TensileMPa <= 0 {
		return ErrBadStrength
	}

	return nil
}

// inputTorqueNmm returns the input torque converted to N·mm.
func (c Config) inputTorqueNmm() float64 { return c.InputTorqueNm * nmmPerNm }

// Status classifies the outcome of building one combination.
type Status int

const (
	// Accepted: the design passed all stage and overall-ratio checks.
	Accepted Status = iota

	// RejectedInfeasible: a stage found no feasible teeth pair.
	RejectedInfeasible

	// RejectedRatioDrift: realized ratios drifted out of the overall band.
	RejectedRatioDrift

	// RejectedInternal: an unexpected failure during assembly.
	RejectedInternal
)

// String returns a stable lowercase token for logs and test output.
func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case RejectedInfeasible:
		return "rejected-infeasible"
	case RejectedRatioDrift:
		return "rejected-ratio-drift"
	default:
		return "rejected-internal"
	}
}

// Outcome is the result of building one combination.
//
// Exactly one of the following holds:
//   - Status == Accepted and Design is populated;
//   - Status == RejectedInfeasible and Stage names the failed level;
//   - Status == RejectedRatioDrift (Design left empty);
//   - Status == RejectedInternal and Err carries the cause.
type Outcome struct {
	Status Status      // classification, see above
	Design gear.Design // populated only when Accepted
	Stage  int         // 1-based failed level for RejectedInfeasible, else 0
	Err    error       // cause for RejectedInternal, else nil
}

// String renders a compact diagnostic, e.g. "rejected-infeasible(stage 2)".
func (o Outcome) String() string {
	switch o.Status {
	case RejectedInfeasible:
		return fmt.Sprintf("%s(stage %d)", o.Status, o.Stage)
	case RejectedInternal:
		return fmt.Sprintf("%s(%v)", o.Status, o.Err)
	default:
		return o.Status.String()
	}
}

// Stats aggregates outcome counts over one Search run, so callers can tell
// "nothing feasible" apart from "everything drifted" without re-running.
type Stats struct {
	// Combinations is the number of combinations the search considered
	// (enumerated within the per-length caps).
	Combinations int

	// Accepted, Infeasible, RatioDrift and Internal count the outcomes.
	Accepted   int
	Infeasible int
	RatioDrift int
	Internal   int
}

// record tallies one outcome.
func (st *Stats) record(o Outcome) {
	switch o.Status {
	case Accepted:
		st.Accepted++
	case RejectedInfeasible:
		st.Infeasible++
	case RejectedRatioDrift:
		st.RatioDrift++
	case RejectedInternal:
		st.Internal++
	}
}
