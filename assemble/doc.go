// Package assemble turns one stage's target ratio into a concrete
// teeth-count pair.
//
// Two kinds of candidate are considered:
//
//   - mesh: every pair (z1, z2) in the teeth range whose realized ratio
//     z2/z1 lies within StageRatioTol of the target. The driver is a fresh
//     gear on its own shaft. z1 == z2 is a legal mesh (a 1:1 idler stage).
//   - twin: when the previous stage's driven gear is known, its teeth count
//     becomes the driver (the new driver physically is that gear, compound-
//     mounted on the same shaft) and z2 = round(z1·target). Accepted only
//     if z2 stays in range, differs from z1, and the realized ratio holds
//     the tolerance.
//
// Selection is greedy and local: among all candidates the pair with the
// smallest z1+z2 wins (smaller gears, smaller gearbox envelope), ties
// broken by enumeration order — z1 ascending, then z2 ascending, the twin
// candidate last. A globally better train (say, lower total module mass)
// can be missed; carrying multiple candidates forward was considered and
// rejected as a combinatorial blow-up.
//
// Guarantees: deterministic, allocation-free, sentinel-only failures.
package assemble
