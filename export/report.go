package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/konbassmio/gearbox/gear"
	"github.com/konbassmio/gearbox/sizing"
)

// rule is the horizontal separator of the console report.
const rule = "------------------------------------------------------------"

// WriteReport renders a human-readable report of every design in set:
// overall ratio, deviation from target, per-stage lines, and an ASCII
// transmission-chain diagram ("---" joins meshed stages, "===" marks a
// compound/twin shaft).
//
// The writer is typically os.Stdout; any write error is returned as-is.
func WriteReport(w io.Writer, set *gear.SolutionSet, targetRatio float64) error {
	if set == nil {
		return ErrNilSolutionSet
	}

	if _, err := fmt.Fprintf(w, "found %d design(s)\n", set.Len()); err != nil {
		return err
	}

	for i, d := range set.Designs() {
		overall := d.OverallRatio()
		deviation := math.Abs(overall/targetRatio-1) * 100

		if _, err := fmt.Fprintf(w, "\ndesign %d | overall ratio %.2f | deviation %.2f%%\n%s\n",
			i+1, overall, deviation, rule); err != nil {
			return err
		}

		for _, s := range d.Stages {
			if _, err := fmt.Fprintf(w, "  %s\n", s); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "  chain: %s\n", chain(d)); err != nil {
			return err
		}
	}

	return nil
}

// chain renders one design as a linear diagram from input to output shaft.
func chain(d gear.Design) string {
	var b strings.Builder
	b.WriteString("input")
	for i, s := range d.Stages {
		if i > 0 {
			if s.Interstage == gear.LinkTwin {
				b.WriteString(" === ")
			} else {
				b.WriteString(" --- ")
			}
		} else {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "Z%d(%dt) -> Z%d(%dt)", s.Driver.ID, s.Driver.Teeth, s.Driven.ID, s.Driven.Teeth)
	}
	b.WriteString(" -> output")

	return b.String()
}

// WriteModuleReport renders the sizing utility's result: the strength
// minimum and every feasible candidate, formatted at the step's resolution.
func WriteModuleReport(w io.Writer, res sizing.Result) error {
	if _, err := fmt.Fprintf(w, "minimum module for strength: %.3f mm\n", res.MinRequired); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "feasible candidates (%d):\n", len(res.Candidates)); err != nil {
		return err
	}
	for _, m := range res.Candidates {
		if _, err := fmt.Fprintf(w, "  %.*f\n", res.Decimals, m); err != nil {
			return err
		}
	}

	return nil
}
