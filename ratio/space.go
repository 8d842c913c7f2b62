package ratio

import "sort"

// Space enumerates all distinct achievable single-stage ratios for teeth
// counts in [zMin, zMax], rounded to places decimal places, sorted ascending.
//
// Contracts:
//   - 1 ≤ zMin ≤ zMax (ErrBadTeethRange otherwise). zMin == zMax is legal
//     and yields the single ratio 1.0.
//   - MinPlaces ≤ places ≤ MaxPlaces (ErrBadResolution otherwise);
//     use DefaultPlaces for the classic one-decimal coarsening.
//
// The result never contains a value below round(zMin/zMax) or above
// round(zMax/zMin): those quotients bound every achievable pair.
//
// Complexity: O(n²) time for n = zMax−zMin+1, plus O(k·log k) to sort the
// k distinct rounded values.
func Space(zMin, zMax, places int) ([]Ratio, error) {
	// Stage 1: parameter validation, sentinels only.
	if zMin < 1 || zMax < zMin {
		return nil, ErrBadTeethRange
	}
	if places < MinPlaces || places > MaxPlaces {
		return nil, ErrBadResolution
	}

	var den int64 = 1
	for i := 0; i < places; i++ {
		den *= 10
	}

	// Stage 2: enumerate every ordered pair, round, deduplicate by numerator.
	// The shared denominator makes the numerator a perfect set key.
	seen := make(map[int64]struct{})
	out := make([]Ratio, 0, 2*(zMax-zMin)+1)

	var (
		z1, z2 int   // driver and driven teeth counts
		r      Ratio // rounded candidate
		ok     bool  // dedup membership flag
	)
	for z1 = zMin; z1 <= zMax; z1++ {
		for z2 = zMin; z2 <= zMax; z2++ {
			r = round(float64(z2)/float64(z1), den)
			if _, ok = seen[r.num]; ok {
				continue
			}
			seen[r.num] = struct{}{}
			out = append(out, r)
		}
	}

	// Stage 3: canonical ascending order.
	sort.Slice(out, func(i, j int) bool { return out[i].num < out[j].num })

	return out, nil
}
