// Package gear defines the central Gear, Stage, Design, and SolutionSet types
// shared by the ratio-combination search, the stage assembler, and the
// train-building pipeline.
//
// This file declares the Role and LinkType enums, the Gear and Stage records,
// sentinel errors, and the Design container. SolutionSet lives in
// solutionset.go.
//
// Errors:
//
//	ErrNegativeCapacity - SolutionSet created with a negative capacity.
package gear

import (
	"errors"
	"fmt"
)

// ErrNegativeCapacity indicates that NewSolutionSet received a negative cap.
var ErrNegativeCapacity = errors.New("gear: solution-set capacity must be non-negative")

// Role tells whether a gear drives its stage or is driven by it.
type Role int

const (
	// Driver marks the gear delivering torque into the stage.
	Driver Role = iota

	// Driven marks the gear receiving torque from the stage.
	Driven
)

// String returns "driver" or "driven".
func (r Role) String() string {
	if r == Driver {
		return "driver"
	}

	return "driven"
}

// LinkType describes how a stage's driver gear is mounted.
//
//   - LinkNone — no inter-stage link (only valid as the level-1 interstage marker).
//   - LinkMesh — the driver is a fresh gear on its own shaft.
//   - LinkTwin — the driver is rigidly co-mounted on the previous driven gear's
//     shaft (a compound/twin arrangement): same teeth count, same axis.
type LinkType int

const (
	// LinkNone marks the absence of an inter-stage link (level 1 only).
	LinkNone LinkType = iota

	// LinkMesh marks an ordinary mesh link: a fresh driver on its own shaft.
	LinkMesh

	// LinkTwin marks a compound link: the driver shares the previous driven
	// gear's shaft and teeth count.
	LinkTwin
)

// String returns "none", "mesh" or "twin".
func (lt LinkType) String() string {
	switch lt {
	case LinkMesh:
		return "mesh"
	case LinkTwin:
		return "twin"
	default:
		return "none"
	}
}

// Gear is one tooth wheel instance inside one accepted design.
//
// A Gear is created exactly once during stage assembly and never mutated
// afterwards; it is owned exclusively by its Stage.
//
// Invariant: Teeth lies within the configured [ZMin, ZMax] range.
type Gear struct {
	// ID is unique within the owning design (1, 2, 3, … in creation order).
	ID int

	// Teeth is the tooth count (positive).
	Teeth int

	// Stage is the 1-based level of the owning stage.
	Stage int

	// Role tells whether this gear drives the stage or is driven by it.
	Role Role

	// Axis is the shaft identifier this gear is mounted on (positive).
	// Axis numbering is a cross-design sequence managed by train.AxisAllocator.
	Axis int

	// Torque is the torque transmitted through this gear, in N·mm.
	Torque float64

	// MinModule is the minimum tooth module required for strength, in mm.
	// Derived from Torque via the shear/tensile sizing formula; never set
	// independently.
	MinModule float64
}

// String renders a compact human-readable form, e.g.
// "Z3(24t, driven, axis 2, m≥1.84mm)".
func (g Gear) String() string {
	return fmt.Sprintf("Z%d(%dt, %s, axis %d, m≥%.2fmm)", g.ID, g.Teeth, g.Role, g.Axis, g.MinModule)
}

// Stage is one transmission stage within one design: a driver/driven gear
// pair with its realized ratio and link bookkeeping.
//
// Invariants:
//   - Level is 1-based and strictly increasing, without gaps, within a design.
//   - Ratio is the realized driven/driver teeth quotient and lies within the
//     absolute stage tolerance of the search-time target ratio.
//   - Link == LinkTwin only when a previous driven gear exists (Level ≥ 2).
//   - Interstage == LinkNone exactly when Level == 1.
type Stage struct {
	// Level is the 1-based position of this stage within its design.
	Level int

	// Ratio is the realized ratio Driven.Teeth/Driver.Teeth (positive).
	Ratio float64

	// Driver is the gear delivering torque into this stage.
	Driver Gear

	// Driven is the gear receiving torque from this stage.
	Driven Gear

	// Link tells how this stage's driver is mounted (mesh or twin).
	Link LinkType

	// Interstage describes the connection to the previous stage:
	// LinkNone for level 1, otherwise mesh or twin.
	Interstage LinkType
}

// String renders one report line, e.g.
// "stage 2: Z3(20t, driver, axis 2, m≥1.10mm) <=> Z4(57t, driven, axis 3, m≥1.21mm) | twin | ratio=2.85".
func (s Stage) String() string {
	arrow := "->"
	if s.Link == LinkTwin {
		arrow = "<=>"
	}

	return fmt.Sprintf("stage %d: %s %s %s | %s | ratio=%.2f",
		s.Level, s.Driver, arrow, s.Driven, s.Link, s.Ratio)
}

// Design is one complete gear train: an ordered sequence of stages from the
// input shaft to the output shaft.
//
// Invariant: the product of realized per-stage ratios lies within the overall
// target tolerance band; designs violating it are discarded before they ever
// reach a SolutionSet.
type Design struct {
	// Stages holds levels 1..N in order.
	Stages []Stage
}
