package ratio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konbassmio/gearbox/ratio"
)

// TestSpace_BadInputs exercises every validation sentinel.
func TestSpace_BadInputs(t *testing.T) {
	_, err := ratio.Space(0, 10, ratio.DefaultPlaces)
	assert.ErrorIs(t, err, ratio.ErrBadTeethRange, "zMin < 1")

	_, err = ratio.Space(20, 15, ratio.DefaultPlaces)
	assert.ErrorIs(t, err, ratio.ErrBadTeethRange, "zMax < zMin")

	_, err = ratio.Space(15, 20, 0)
	assert.ErrorIs(t, err, ratio.ErrBadResolution, "places below MinPlaces")

	_, err = ratio.Space(15, 20, ratio.MaxPlaces+1)
	assert.ErrorIs(t, err, ratio.ErrBadResolution, "places above MaxPlaces")
}

// TestSpace_BoundedByExtremes: for [15,20] every achievable quotient lies in
// [15/20, 20/15], so at one-decimal resolution the rounded space must stay
// within [0.8, 1.3] — never below 0.75 nor above 1.34.
func TestSpace_BoundedByExtremes(t *testing.T) {
	space, err := ratio.Space(15, 20, ratio.DefaultPlaces)
	require.NoError(t, err)
	require.NotEmpty(t, space)

	for _, r := range space {
		assert.GreaterOrEqual(t, r.Float(), 0.75, "no ratio below zMin/zMax")
		assert.LessOrEqual(t, r.Float(), 1.34, "no ratio above zMax/zMin")
	}
	assert.InDelta(t, 0.8, space[0].Float(), 1e-12, "15/20 rounds to 0.8")
	assert.InDelta(t, 1.3, space[len(space)-1].Float(), 1e-12, "20/15 rounds to 1.3")
}

// TestSpace_SortedAndDeduplicated: ascending order, no duplicates, and the
// unit ratio present in any range containing equal teeth pairs.
func TestSpace_SortedAndDeduplicated(t *testing.T) {
	space, err := ratio.Space(15, 60, ratio.DefaultPlaces)
	require.NoError(t, err)

	seen := make(map[int64]struct{}, len(space))
	for i, r := range space {
		if i > 0 {
			assert.True(t, space[i-1].Less(r), "strictly ascending at %d", i)
		}
		_, dup := seen[r.Num()]
		assert.False(t, dup, "duplicate numerator %d", r.Num())
		seen[r.Num()] = struct{}{}
	}

	hasUnit := false
	for _, r := range space {
		if r.Num() == 10 {
			hasUnit = true
		}
	}
	assert.True(t, hasUnit, "1.0 must be achievable (z1 == z2)")
}

// TestSpace_DegenerateSingleCount: zMin == zMax yields exactly the unit ratio.
func TestSpace_DegenerateSingleCount(t *testing.T) {
	space, err := ratio.Space(20, 20, ratio.DefaultPlaces)
	require.NoError(t, err)
	require.Len(t, space, 1)
	assert.InDelta(t, 1.0, space[0].Float(), 1e-12)
}

// TestSpace_FinerResolution: two decimal places keep values the one-decimal
// rounding conflated, growing the space.
func TestSpace_FinerResolution(t *testing.T) {
	coarse, err := ratio.Space(15, 60, 1)
	require.NoError(t, err)
	fine, err := ratio.Space(15, 60, 2)
	require.NoError(t, err)

	assert.Greater(t, len(fine), len(coarse), "finer resolution distinguishes more ratios")
}

// TestRatio_Accessors pins Float/String/Less on exact tenths.
func TestRatio_Accessors(t *testing.T) {
	space, err := ratio.Space(10, 23, 1)
	require.NoError(t, err)

	// 23/10 is achievable and exact at one decimal.
	var r23 ratio.Ratio
	found := false
	for _, r := range space {
		if r.Num() == 23 {
			r23, found = r, true
		}
	}
	require.True(t, found)
	assert.Equal(t, int64(10), r23.Den())
	assert.InDelta(t, 2.3, r23.Float(), 1e-12)
	assert.Equal(t, "2.3", r23.String())
}
