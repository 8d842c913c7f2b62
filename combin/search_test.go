package combin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konbassmio/gearbox/combin"
	"github.com/konbassmio/gearbox/ratio"
)

// mustSpace builds a sorted custom ratio space from float values.
func mustSpace(t *testing.T, values ...float64) []ratio.Ratio {
	t.Helper()
	out := make([]ratio.Ratio, len(values))
	for i, v := range values {
		r, err := ratio.FromFloat(v, ratio.DefaultPlaces)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}

// TestBand_Floor: the lower bound never drops below BandFloor.
func TestBand_Floor(t *testing.T) {
	lower, upper := combin.Band(0.05, 0.5)
	assert.Equal(t, combin.BandFloor, lower, "near-zero targets are floored")
	assert.InDelta(t, 0.075, upper, 1e-12)

	lower, upper = combin.Band(18, 0.05)
	assert.InDelta(t, 17.1, lower, 1e-9)
	assert.InDelta(t, 18.9, upper, 1e-9)
}

// TestCombinations_BadInputs exercises every validation sentinel.
func TestCombinations_BadInputs(t *testing.T) {
	space := mustSpace(t, 1.0, 2.0)

	cases := []struct {
		name string
		sp   []ratio.Ratio
		opts combin.Options
		want error
	}{
		{"non-positive target", space, combin.Options{Target: 0, MinLength: 1, MaxLength: 1}, combin.ErrBadTarget},
		{"negative tolerance", space, combin.Options{Target: 2, Tolerance: -0.1, MinLength: 1, MaxLength: 1}, combin.ErrBadTolerance},
		{"zero min length", space, combin.Options{Target: 2, MinLength: 0, MaxLength: 1}, combin.ErrBadLengthRange},
		{"max below min", space, combin.Options{Target: 2, MinLength: 2, MaxLength: 1}, combin.ErrBadLengthRange},
		{"negative cap", space, combin.Options{Target: 2, MinLength: 1, MaxLength: 1, MaxPerLength: -1}, combin.ErrBadCap},
		{"empty space", nil, combin.Options{Target: 2, MinLength: 1, MaxLength: 1}, combin.ErrEmptySpace},
		{"unsorted space", mustSpace(t, 2.0, 1.0), combin.Options{Target: 2, MinLength: 1, MaxLength: 1}, combin.ErrUnsortedSpace},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := combin.Combinations(tc.sp, tc.opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCombinations_ExactProduct: a single multiset hits a zero-tolerance
// band, and its ratios come back in non-decreasing order.
func TestCombinations_ExactProduct(t *testing.T) {
	space := mustSpace(t, 1.0, 2.0, 3.0)

	combos, err := combin.Combinations(space, combin.Options{
		Target:    6,
		Tolerance: 0,
		MinLength: 2,
		MaxLength: 2,
	})
	require.NoError(t, err)
	require.Len(t, combos, 1, "only 2·3 = 6 lands exactly on target")

	got := combos[0]
	assert.InDelta(t, 6.0, got.Product, 1e-12)
	require.Len(t, got.Ratios, 2)
	assert.InDelta(t, 2.0, got.Ratios[0].Float(), 1e-12)
	assert.InDelta(t, 3.0, got.Ratios[1].Float(), 1e-12)
}

// TestCombinations_LexicographicOrderAndCap: the cap keeps only the
// lexicographically-earliest accepted combinations of each length.
func TestCombinations_LexicographicOrderAndCap(t *testing.T) {
	space := mustSpace(t, 1.0, 2.0)

	// Band [0.1, 4]: every 2-multiset qualifies — (1,1), (1,2), (2,2).
	all, err := combin.Combinations(space, combin.Options{
		Target:    2,
		Tolerance: 1.0,
		MinLength: 2,
		MaxLength: 2,
	})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.InDelta(t, 1.0, all[0].Product, 1e-12)
	assert.InDelta(t, 2.0, all[1].Product, 1e-12)
	assert.InDelta(t, 4.0, all[2].Product, 1e-12)

	capped, err := combin.Combinations(space, combin.Options{
		Target:       2,
		Tolerance:    1.0,
		MinLength:    2,
		MaxLength:    2,
		MaxPerLength: 2,
	})
	require.NoError(t, err)
	require.Len(t, capped, 2, "cap truncates the tail of the enumeration")
	assert.InDelta(t, 1.0, capped[0].Product, 1e-12)
	assert.InDelta(t, 2.0, capped[1].Product, 1e-12)
}

// TestCombinations_PerLengthIndependence: each stage count is enumerated
// and capped on its own; lengths appear in ascending blocks.
func TestCombinations_PerLengthIndependence(t *testing.T) {
	space := mustSpace(t, 2.0)

	combos, err := combin.Combinations(space, combin.Options{
		Target:    4,
		Tolerance: 1.0, // band [0.1, 8]: accepts 2, 4 and 8
		MinLength: 1,
		MaxLength: 3,
	})
	require.NoError(t, err)
	require.Len(t, combos, 3)
	assert.Len(t, combos[0].Ratios, 1)
	assert.Len(t, combos[1].Ratios, 2)
	assert.Len(t, combos[2].Ratios, 3)
}

// TestCombinations_PruningMatchesBruteForce: on a real ratio space the
// pruned enumeration must agree with a naive full scan, element for element.
func TestCombinations_PruningMatchesBruteForce(t *testing.T) {
	space, err := ratio.Space(15, 40, ratio.DefaultPlaces)
	require.NoError(t, err)

	opts := combin.Options{
		Target:    4.5,
		Tolerance: 0.05,
		MinLength: 2,
		MaxLength: 2,
	}
	combos, err := combin.Combinations(space, opts)
	require.NoError(t, err)

	lower, upper := combin.Band(opts.Target, opts.Tolerance)
	var naive [][2]float64
	for i := 0; i < len(space); i++ {
		for j := i; j < len(space); j++ {
			p := space[i].Float() * space[j].Float()
			if lower <= p && p <= upper {
				naive = append(naive, [2]float64{space[i].Float(), space[j].Float()})
			}
		}
	}

	require.Len(t, combos, len(naive))
	for i, c := range combos {
		assert.Equal(t, naive[i][0], c.Ratios[0].Float(), "combo %d first ratio", i)
		assert.Equal(t, naive[i][1], c.Ratios[1].Float(), "combo %d second ratio", i)
	}
}

// TestCombinations_NothingInBand: an unreachable band yields an empty,
// error-free result.
func TestCombinations_NothingInBand(t *testing.T) {
	space := mustSpace(t, 1.0, 2.0)

	combos, err := combin.Combinations(space, combin.Options{
		Target:    100,
		Tolerance: 0.05,
		MinLength: 1,
		MaxLength: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, combos)
}
