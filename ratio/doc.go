// Package ratio enumerates the achievable single-stage transmission ratios
// for a bounded teeth-count range.
//
// For every ordered teeth pair (z1, z2) in [zMin, zMax]² the quotient z2/z1
// is rounded to a fixed number of decimal places and stored as an exact
// rational with a power-of-ten denominator. Rounding deliberately conflates
// many (z1, z2) pairs into one coarse ratio value: the combination search
// works on this reduced space, and exact teeth counts are re-derived later
// by the stage assembler, not stored here.
//
// The resolution (decimal places) is a parameter. Finer resolution grows the
// ratio space roughly tenfold per extra place, and the downstream multiset
// search grows combinatorially with it — one decimal place (the default) is
// almost always what you want.
//
// Guarantees:
//
//   - Deterministic: output is sorted ascending and duplicate-free.
//   - Exact: every Ratio is an integer numerator over 10^places; no
//     floating-point drift accumulates in later combination arithmetic.
//   - Strict sentinels: ErrBadTeethRange, ErrBadResolution; no panics.
//
// Complexity: Space is O((zMax−zMin+1)²) time, O(distinct ratios) space.
package ratio
