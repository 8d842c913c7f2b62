package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konbassmio/gearbox/assemble"
	"github.com/konbassmio/gearbox/gear"
)

// TestBestPair_BadInputs exercises the parameter sentinels.
func TestBestPair_BadInputs(t *testing.T) {
	_, err := assemble.BestPair(2.0, 0, 0, 10)
	assert.ErrorIs(t, err, assemble.ErrBadTeethRange)

	_, err = assemble.BestPair(2.0, 0, 20, 15)
	assert.ErrorIs(t, err, assemble.ErrBadTeethRange)

	_, err = assemble.BestPair(0, 0, 15, 60)
	assert.ErrorIs(t, err, assemble.ErrBadTarget)
}

// TestBestPair_MinimalSum: for target 3.0 on [15,60] the smallest feasible
// pair is (15,45): any smaller driver is out of range, any other driven for
// z1=15 breaks the ±0.05 band.
func TestBestPair_MinimalSum(t *testing.T) {
	pair, err := assemble.BestPair(3.0, 0, 15, 60)
	require.NoError(t, err)

	assert.Equal(t, 15, pair.Z1)
	assert.Equal(t, 45, pair.Z2)
	assert.Equal(t, gear.LinkMesh, pair.Link)
	assert.InDelta(t, 3.0, pair.Ratio(), 0.05)
	assert.Equal(t, 60, pair.TeethSum())
}

// TestBestPair_ToleranceIsAbsolute: z2/z1 may deviate from the target by up
// to 0.05 absolutely, so targets unreachable exactly still assemble.
func TestBestPair_ToleranceIsAbsolute(t *testing.T) {
	// Target 2.95: (20, 59) realizes exactly; (15, 44) gives 2.9(3),
	// off by 0.01(6) — within the band and with the smaller sum.
	pair, err := assemble.BestPair(2.95, 0, 15, 60)
	require.NoError(t, err)

	assert.Equal(t, 15, pair.Z1)
	assert.Equal(t, 44, pair.Z2)
	assert.InDelta(t, 2.95, pair.Ratio(), assemble.StageRatioTol)
}

// TestBestPair_EqualTeethMesh: a 1:1 stage with z1 == z2 is a legal mesh —
// the degenerate single-count range still assembles a unit stage.
func TestBestPair_EqualTeethMesh(t *testing.T) {
	pair, err := assemble.BestPair(1.0, 0, 20, 20)
	require.NoError(t, err)

	assert.Equal(t, 20, pair.Z1)
	assert.Equal(t, 20, pair.Z2)
	assert.Equal(t, gear.LinkMesh, pair.Link)
	assert.InDelta(t, 1.0, pair.Ratio(), 1e-12)
}

// TestBestPair_NoCandidate: target far beyond zMax/zMin is infeasible.
func TestBestPair_NoCandidate(t *testing.T) {
	_, err := assemble.BestPair(6.0, 0, 15, 60)
	assert.ErrorIs(t, err, assemble.ErrNoFeasiblePair)

	// Twin cannot rescue it: round(45·6) = 270 is far out of range.
	_, err = assemble.BestPair(6.0, 45, 15, 60)
	assert.ErrorIs(t, err, assemble.ErrNoFeasiblePair)
}

// TestBestPair_TwinLosesTieToMesh: the twin candidate (prevTeeth, z2) always
// has a mesh duplicate with the same teeth sum, and mesh candidates are
// enumerated first — so ties resolve to mesh. The twin branch can only win
// outright, which requires a smaller sum than every mesh pair; since the
// twin pair itself is part of the mesh enumeration, the selected link is
// mesh whenever any candidate exists.
func TestBestPair_TwinLosesTieToMesh(t *testing.T) {
	pair, err := assemble.BestPair(2.0, 30, 15, 60)
	require.NoError(t, err)

	// Smallest mesh for target 2.0 is (15, 30); the twin (30, 60) has a
	// larger sum and would lose even without the tie-break.
	assert.Equal(t, 15, pair.Z1)
	assert.Equal(t, 30, pair.Z2)
	assert.Equal(t, gear.LinkMesh, pair.Link)
}

// TestBestPair_FirstMinimalWins: among equal-sum candidates the first in
// enumeration order (z1 ascending, then z2 ascending) is kept.
func TestBestPair_FirstMinimalWins(t *testing.T) {
	// Target 1.0 on [15,16]: candidates (15,15) sum 30, (16,16) sum 32,
	// and the off-diagonal pairs miss the ±0.05 band (16/15 ≈ 1.067).
	pair, err := assemble.BestPair(1.0, 0, 15, 16)
	require.NoError(t, err)

	assert.Equal(t, 15, pair.Z1)
	assert.Equal(t, 15, pair.Z2)
}
