package assemble

import (
	"errors"
	"math"

	"github.com/konbassmio/gearbox/gear"
)

// Sentinel errors for stage assembly.
var (
	// ErrNoFeasiblePair indicates that no mesh or twin candidate satisfies
	// the target ratio within StageRatioTol for the given teeth range.
	ErrNoFeasiblePair = errors.New("assemble: no feasible teeth pair for target ratio")

	// ErrBadTeethRange indicates zMin < 1 or zMax < zMin.
	ErrBadTeethRange = errors.New("assemble: teeth range must satisfy 1 <= zMin <= zMax")

	// ErrBadTarget indicates a non-positive target ratio.
	ErrBadTarget = errors.New("assemble: target ratio must be positive")
)

// StageRatioTol is the absolute tolerance on a stage's realized ratio:
// a candidate (z1, z2) is feasible iff |z2/z1 − target| ≤ StageRatioTol.
// Absolute, not relative — the coarsened ratio space is one-decimal, so a
// half-step band on either side always re-derives at least the pairs the
// rounding conflated.
const StageRatioTol = 0.05

// Pair is one feasible teeth-count assignment for a stage.
type Pair struct {
	// Z1 is the driver teeth count.
	Z1 int

	// Z2 is the driven teeth count.
	Z2 int

	// Link is LinkMesh for a fresh driver or LinkTwin for a compound driver
	// reusing the previous driven gear.
	Link gear.LinkType
}

// Ratio returns the realized ratio Z2/Z1.
func (p Pair) Ratio() float64 { return float64(p.Z2) / float64(p.Z1) }

// TeethSum returns Z1+Z2, the greedy selection key.
func (p Pair) TeethSum() int { return p.Z1 + p.Z2 }

// BestPair selects the teeth pair for one stage.
//
// prevTeeth is the previous stage's driven teeth count, or 0 when there is
// no previous stage (level 1); the twin candidate exists only for
// prevTeeth > 0.
//
// Selection rule: minimal TeethSum over mesh ∪ twin candidates; on a tie
// the first candidate in enumeration order wins (z1 asc, z2 asc, twin last).
//
// Errors: ErrBadTeethRange, ErrBadTarget on bad inputs; ErrNoFeasiblePair
// when the candidate set is empty — the caller rejects the combination.
//
// Complexity: O((zMax−zMin+1)²) time, O(1) space.
func BestPair(target float64, prevTeeth, zMin, zMax int) (Pair, error) {
	if zMin < 1 || zMax < zMin {
		return Pair{}, ErrBadTeethRange
	}
	if target <= 0 {
		return Pair{}, ErrBadTarget
	}

	var (
		best  Pair // current minimum-sum candidate
		found bool // whether any candidate was accepted
		z1    int  // driver teeth under test
		z2    int  // driven teeth under test
	)

	// Stage 1: mesh candidates, z1 ascending then z2 ascending.
	// Strict '<' keeps the first minimal candidate on ties.
	for z1 = zMin; z1 <= zMax; z1++ {
		for z2 = zMin; z2 <= zMax; z2++ {
			if math.Abs(float64(z2)/float64(z1)-target) > StageRatioTol {
				continue
			}
			if !found || z1+z2 < best.TeethSum() {
				best = Pair{Z1: z1, Z2: z2, Link: gear.LinkMesh}
				found = true
			}
		}
	}

	// Stage 2: the single twin candidate, enumerated after all meshes.
	if prevTeeth > 0 {
		z1 = prevTeeth
		z2 = int(math.Round(float64(z1) * target))
		if z2 >= zMin && z2 <= zMax && z2 != z1 &&
			math.Abs(float64(z2)/float64(z1)-target) <= StageRatioTol {
			if !found || z1+z2 < best.TeethSum() {
				best = Pair{Z1: z1, Z2: z2, Link: gear.LinkTwin}
				found = true
			}
		}
	}

	if !found {
		return Pair{}, ErrNoFeasiblePair
	}

	return best, nil
}
