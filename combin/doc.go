// Package combin enumerates multi-stage ratio combinations whose product
// lands in a target tolerance band.
//
// A combination is a multiset (combination with repetition, order
// irrelevant) of single-stage ratios drawn from a sorted ratio space, with
// a length between MinLength and MaxLength stages. Each length is searched
// independently, in lexicographic order over the sorted space, and stops
// once MaxPerLength combinations have been accepted for that length.
//
// The cap is a runtime safety valve, not a quality signal: combinations
// beyond it are never considered at all, which biases results toward
// lexicographically-early (small-ratio-first) candidates on large spaces.
// Raise MaxPerLength if you suspect the interesting designs live late in
// the enumeration.
//
// Pruning: the enumeration skips subtrees whose products provably cannot
// reach the band (ratios are positive and the product is monotone in every
// element). Pruned subtrees contain no acceptable combination, so the
// output sequence is identical to an exhaustive scan, just cheaper.
//
// Guarantees:
//
//   - Deterministic: same space and options ⇒ same combinations, same order.
//   - No global ordering across lengths: output order is enumeration order,
//     not closeness to target.
//   - Strict sentinels from types.go; no panics on user input.
package combin
