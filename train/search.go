package train

import (
	"github.com/konbassmio/gearbox/combin"
	"github.com/konbassmio/gearbox/gear"
	"github.com/konbassmio/gearbox/ratio"
)

// Search runs the full design pipeline:
//
//	validate → ratio.Space → combin.Combinations → Build each, in order →
//	collect accepted designs until MaxSolutions.
//
// Combinations are consumed strictly in enumeration order; the axis
// allocator advances only on acceptance, so shaft numbering continues
// monotonically across the returned designs. Stats tallies every outcome,
// letting callers distinguish an infeasible teeth range from a run where
// every candidate drifted out of tolerance.
//
// Errors are configuration-level only (Config sentinels, plus those of the
// ratio and combination stages); per-combination failures are Stats
// material, never errors.
//
// Complexity: O(spaceⁿ) enumeration bounded by MaxPerLength per stage
// count, times O(L·z²) assembly per surviving combination.
func Search(cfg Config) (*gear.SolutionSet, Stats, error) {
	var stats Stats

	if err := cfg.Validate(); err != nil {
		return nil, stats, err
	}

	places := cfg.RatioPlaces
	if places == 0 {
		places = ratio.DefaultPlaces
	}

	space, err := ratio.Space(cfg.ZMin, cfg.ZMax, places)
	if err != nil {
		return nil, stats, err
	}

	combos, err := combin.Combinations(space, combin.Options{
		Target:       cfg.TargetRatio,
		Tolerance:    cfg.Tolerance,
		MinLength:    cfg.MinStages,
		MaxLength:    cfg.MaxStages,
		MaxPerLength: cfg.MaxPerLength,
	})
	if err != nil {
		return nil, stats, err
	}

	set, err := gear.NewSolutionSet(cfg.MaxSolutions)
	if err != nil {
		return nil, stats, err
	}

	builder, err := NewBuilder(cfg, NewAxisAllocator())
	if err != nil {
		return nil, stats, err
	}

	for _, c := range combos {
		stats.Combinations++

		out := builder.Build(c)
		stats.record(out)

		if out.Status != Accepted {
			continue
		}
		set.Add(out.Design)
		if set.Full() {
			break
		}
	}

	return set, stats, nil
}
