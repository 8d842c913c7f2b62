// Package train drives the end-to-end gear-train design search: ratio-space
// precomputation, combination search, per-combination assembly with axis
// bookkeeping, torque propagation, strength-based module sizing, and final
// ratio-drift validation.
//
// Entry points:
//
//   - Search — the full pipeline: Config → SolutionSet + Stats.
//   - Builder.Build — one combination → one Outcome; useful when the caller
//     wants custom acceptance policies or its own combination source.
//
// Outcome taxonomy (every combination ends in exactly one):
//
//   - Accepted            — a validated Design, appended to the SolutionSet.
//   - RejectedInfeasible  — some stage had no feasible teeth pair; Outcome.Stage
//     names the level that failed.
//   - RejectedRatioDrift  — all stages assembled, but integer teeth rounding
//     drifted the realized overall ratio out of the target band.
//   - RejectedInternal    — an unexpected assembly failure; Outcome.Err carries
//     the cause. Kept distinct from ordinary infeasibility so genuine bugs
//     surface instead of hiding among expected rejections.
//
// Axis numbering is a cross-design sequence: the AxisAllocator hands its
// current value to each build and advances only when a design is accepted,
// so the next accepted design's shafts continue where the previous one left
// off and rejected combinations leave no gaps. Threading the allocator
// explicitly (rather than a package-level counter) keeps the behavior
// reproducible and makes the dependency visible at every call site.
//
// The engine is single-threaded, synchronous and batch-oriented: one forward
// pass over the enumerated combinations, stopping at the solution cap or at
// exhaustion. Torque propagation assumes a reduction at each mesh
// (driven = driver × realized ratio) and applies the same rule to
// speed-increasing stages; see the note on Builder.Build.
package train
