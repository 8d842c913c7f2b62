package train

import (
	"errors"
	"fmt"

	"github.com/konbassmio/gearbox/assemble"
	"github.com/konbassmio/gearbox/combin"
	"github.com/konbassmio/gearbox/gear"
	"github.com/konbassmio/gearbox/sizing"
)

// Builder assembles one concrete design per ratio combination.
//
// A Builder is created once per search run and reused across combinations;
// the only state it mutates between calls is the shared AxisAllocator.
type Builder struct {
	cfg  Config
	axes *AxisAllocator
}

// NewBuilder validates cfg and returns a Builder bound to the allocator.
// A nil allocator gets a fresh one (axis numbering starts at 1).
func NewBuilder(cfg Config, axes *AxisAllocator) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if axes == nil {
		axes = NewAxisAllocator()
	}

	return &Builder{cfg: cfg, axes: axes}, nil
}

// Build assembles the combination into a complete design, or classifies why
// it cannot be one. It never returns a Go error: every failure mode is an
// Outcome (see the package doc for the taxonomy).
//
// Per-stage procedure, level = 1..L:
//  1. Select the teeth pair (mesh or twin) for the stage's target ratio;
//     no candidate ⇒ RejectedInfeasible naming the level.
//  2. Realized ratio = z2/z1 exactly, from integer teeth counts; it may
//     drift from the search-time target within assemble.StageRatioTol.
//  3. Torque: driver receives the running torque, driven = driver × realized.
//     The same rule applies when realized < 1 (speed increase); physically
//     that understates torque on an increase stage, but the relationship is
//     kept uniform to match the established export semantics.
//  4. Axes: a twin driver reuses the previous driven gear's axis and pulls
//     the cursor back to it; a mesh driver takes the cursor as-is. The
//     driven gear always lands on driver axis + 1 and the cursor follows.
//  5. Both gears are sized via sizing.MinModule (shear/tensile cube-root
//     proxy — a placeholder, not a certified strength calculation).
//
// After all stages the realized overall ratio is re-checked against the
// target band: integer rounding can accumulate past the tolerance even
// though every stage individually held it ⇒ RejectedRatioDrift.
//
// Only on acceptance does the axis cursor commit; rejected combinations
// leave the allocator untouched.
//
// Complexity: O(L·(zMax−zMin+1)²) dominated by pair selection.
func (b *Builder) Build(c combin.Combination) Outcome {
	if len(c.Ratios) == 0 {
		return Outcome{Status: RejectedInternal, Err: ErrEmptyCombination}
	}

	var (
		stages     = make([]gear.Stage, 0, len(c.Ratios))
		prevDriven *gear.Gear // driven gear of the previous stage, nil at level 1
		cursor     = b.axes.Current()
		gearID     = 1 // per-design numbering: 1, 2, 3, …
		torque     = b.cfg.inputTorqueNmm()
		realized   = 1.0 // running product of realized ratios
	)

	for level := 1; level <= len(c.Ratios); level++ {
		target := c.Ratios[level-1].Float()

		prevTeeth := 0
		if prevDriven != nil {
			prevTeeth = prevDriven.Teeth
		}

		pair, err := assemble.BestPair(target, prevTeeth, b.cfg.ZMin, b.cfg.ZMax)
		switch {
		case err == nil:
			// feasible, continue below
		case errors.Is(err, assemble.ErrNoFeasiblePair):
			return Outcome{Status: RejectedInfeasible, Stage: level}
		default:
			// Parameter-level failures cannot happen with a validated Config;
			// surface them loudly instead of masking them as infeasibility.
			return Outcome{Status: RejectedInternal, Err: fmt.Errorf("stage %d: %w", level, err)}
		}

		actual := pair.Ratio()
		drivenTorque := torque * actual

		driverAxis := cursor
		if pair.Link == gear.LinkTwin {
			driverAxis = prevDriven.Axis
			cursor = driverAxis
		}

		driver := gear.Gear{
			ID:        gearID,
			Teeth:     pair.Z1,
			Stage:     level,
			Role:      gear.Driver,
			Axis:      driverAxis,
			Torque:    torque,
			MinModule: sizing.MinModule(torque, b.cfg.ShearMPa, b.cfg.TensileMPa),
		}
		driven := gear.Gear{
			ID:        gearID + 1,
			Teeth:     pair.Z2,
			Stage:     level,
			Role:      gear.Driven,
			Axis:      cursor + 1,
			Torque:    drivenTorque,
			MinModule: sizing.MinModule(drivenTorque, b.cfg.ShearMPa, b.cfg.TensileMPa),
		}

		interstage := pair.Link
		if level == 1 {
			interstage = gear.LinkNone
		}
		stages = append(stages, gear.Stage{
			Level:      level,
			Ratio:      actual,
			Driver:     driver,
			Driven:     driven,
			Link:       pair.Link,
			Interstage: interstage,
		})

		prevDriven = &driven
		gearID += 2
		cursor++
		torque = drivenTorque
		realized *= actual
	}

	// Post-hoc drift check on the realized (not search-time) product.
	lower, upper := combin.Band(b.cfg.TargetRatio, b.cfg.Tolerance)
	if realized < lower || realized > upper {
		return Outcome{Status: RejectedRatioDrift}
	}

	b.axes.Commit(cursor)

	return Outcome{Status: Accepted, Design: gear.Design{Stages: stages}}
}
