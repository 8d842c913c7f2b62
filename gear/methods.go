package gear

// OverallRatio returns the product of realized per-stage ratios.
// Returns 1 for an empty design (neutral element of the product).
//
// Complexity: O(n) over the number of stages.
func (d Design) OverallRatio() float64 {
	product := 1.0
	for _, s := range d.Stages {
		product *= s.Ratio
	}

	return product
}

// InputTorque returns the torque delivered into the first stage, in N·mm,
// or 0 for an empty design.
func (d Design) InputTorque() float64 {
	if len(d.Stages) == 0 {
		return 0
	}

	return d.Stages[0].Driver.Torque
}

// OutputTorque returns the torque leaving the last stage, in N·mm,
// or 0 for an empty design.
func (d Design) OutputTorque() float64 {
	if len(d.Stages) == 0 {
		return 0
	}

	return d.Stages[len(d.Stages)-1].Driven.Torque
}

// Gears returns all gears of the design in creation order
// (driver then driven, stage by stage).
//
// Complexity: O(n) time and O(n) allocations for the result slice.
func (d Design) Gears() []Gear {
	out := make([]Gear, 0, 2*len(d.Stages))
	for _, s := range d.Stages {
		out = append(out, s.Driver, s.Driven)
	}

	return out
}
