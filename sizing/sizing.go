package sizing

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for the module calculator.
var (
	// ErrBadTorque indicates a negative torque.
	ErrBadTorque = errors.New("sizing: torque must be non-negative")

	// ErrBadStrength indicates a non-positive shear or tensile strength.
	ErrBadStrength = errors.New("sizing: material strengths must be positive")

	// ErrBadModuleRange indicates MinModule <= 0 or MaxModule < MinModule.
	ErrBadModuleRange = errors.New("sizing: module range must satisfy 0 < min <= max")

	// ErrBadStep indicates a non-positive step.
	ErrBadStep = errors.New("sizing: step must be positive")
)

// stepSlack absorbs float accumulation when walking the module progression,
// so min + k·step landing a hair above max is still included.
const stepSlack = 1e-9

// MinModule returns the minimum tooth module (mm) able to carry torqueNmm
// (N·mm) given shear strength tau and tensile strength sigma (MPa):
// max((T/τ)^(1/3), (T/σ)^(1/3)).
//
// Contract: tau > 0 and sigma > 0 (validated upstream; this is the shared
// hot-path formula and performs no checks of its own). Zero torque yields
// zero module.
//
// Complexity: O(1).
func MinModule(torqueNmm, tau, sigma float64) float64 {
	return math.Max(math.Cbrt(torqueNmm/tau), math.Cbrt(torqueNmm/sigma))
}

// Params configures one Feasible run.
type Params struct {
	// Torque is the transmitted torque, in N·mm.
	Torque float64

	// Tau is the material shear strength, in MPa.
	Tau float64

	// Sigma is the material tensile strength, in MPa.
	Sigma float64

	// MinModule and MaxModule bound the candidate library, in mm.
	MinModule float64
	MaxModule float64

	// Step is the library's arithmetic increment, in mm. Its decimal
	// resolution (0.25 ⇒ 2 places) also governs candidate rounding and
	// display formatting.
	Step float64
}

// Validate checks all parameters. Sentinels only, O(1).
func (p Params) Validate() error {
	if p.Torque < 0 {
		return ErrBadTorque
	}
	if p.Tau <= 0 || p.Sigma <= 0 {
		return ErrBadStrength
	}
	if p.MinModule <= 0 || p.MaxModule < p.MinModule {
		return ErrBadModuleRange
	}
	if p.Step <= 0 {
		return ErrBadStep
	}

	return nil
}

// Result is the outcome of one Feasible run.
type Result struct {
	// MinRequired is the strength-derived minimum module, in mm.
	MinRequired float64

	// Candidates holds the library values at or above MinRequired, ascending.
	Candidates []float64

	// Decimals is the display resolution inferred from the step.
	Decimals int
}

// Candidates generates the module library min, min+step, …, capped at max,
// each value rounded to the step's decimal resolution, deduplicated and
// sorted ascending. It also returns that resolution for formatting.
//
// Contracts: min > 0, max ≥ min, step > 0 (sentinels otherwise).
//
// Complexity: O((max−min)/step) values plus a sort.
func Candidates(min, max, step float64) ([]float64, int, error) {
	if min <= 0 || max < min {
		return nil, 0, ErrBadModuleRange
	}
	if step <= 0 {
		return nil, 0, ErrBadStep
	}

	decimals := decimalPlaces(step)
	pow := math.Pow(10, float64(decimals))

	seen := make(map[float64]struct{})
	var out []float64

	var (
		current = min     // progression cursor
		rounded float64   // cursor snapped to the step resolution
		ok      bool      // dedup membership flag
	)
	for current <= max+stepSlack {
		rounded = math.Round(current*pow) / pow
		if _, ok = seen[rounded]; !ok && rounded <= max {
			seen[rounded] = struct{}{}
			out = append(out, rounded)
		}
		current += step
	}
	sort.Float64s(out)

	return out, decimals, nil
}

// Feasible derives the strength minimum from p, generates the candidate
// library, and keeps only the values able to carry the torque.
//
// Errors: those of Params.Validate and Candidates.
func Feasible(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	all, decimals, err := Candidates(p.MinModule, p.MaxModule, p.Step)
	if err != nil {
		return Result{}, err
	}

	minRequired := MinModule(p.Torque, p.Tau, p.Sigma)
	kept := make([]float64, 0, len(all))
	for _, m := range all {
		if m >= minRequired {
			kept = append(kept, m)
		}
	}

	return Result{MinRequired: minRequired, Candidates: kept, Decimals: decimals}, nil
}

// decimalPlaces returns the number of digits after the decimal point in the
// shortest representation of v (0.25 ⇒ 2, 1 ⇒ 0, 1e-3 ⇒ 3).
func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}

	return 0
}
