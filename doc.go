// Package gearbox is a design-space explorer for multi-stage gear trains:
// feed it a target overall speed ratio and a teeth-count range, get back
// concrete gearbox layouts with per-gear torque and strength-based sizing.
//
// 🚀 What is gearbox?
//
//	A deterministic, batch-oriented search library that brings together:
//		• Ratio space: every achievable single-stage ratio, rounded & deduplicated
//		• Combination search: multi-stage ratio multisets matching the target band
//		• Stage assembly: concrete teeth pairs, mesh or compound ("twin") links
//		• Train building: axis assignment, torque propagation, module sizing
//		• Sizing: a standalone strength-based module calculator
//		• Export: spreadsheet (.xlsx) and console reports for accepted designs
//
// ✨ Why choose gearbox?
//
//   - Deterministic – same inputs, same designs, same order; no randomness
//   - Strict sentinels – every failure mode is a named error or outcome
//   - Pure Go engine – the search itself has zero runtime dependencies
//   - Honest rejections – infeasible, ratio-drift and internal failures are
//     distinguished, never silently conflated
//
// Everything is organized under small focused subpackages:
//
//	gear/     — domain types: Gear, Stage, Design, SolutionSet
//	ratio/    — achievable single-stage ratio enumeration
//	combin/   — bounded multiset search over the ratio space
//	assemble/ — per-stage teeth-pair selection (mesh & twin)
//	train/    — the end-to-end design pipeline and outcome taxonomy
//	sizing/   — standalone module-sizing calculator
//	export/   — .xlsx export and console reporting
//	cmd/      — the gearbox CLI (interactive or flag-driven)
//
// Quick taste:
//
//	cfg := train.Config{
//	    MaxSolutions: 5, TargetRatio: 18, Tolerance: 0.05,
//	    MinStages: 2, MaxStages: 2, ZMin: 15, ZMax: 60,
//	    InputTorqueNm: 10, ShearMPa: 50, TensileMPa: 80,
//	}
//	set, stats, err := train.Search(cfg)
//
// Dive into examples/ for runnable demos of the search and the sizing tool.
//
//	go get github.com/konbassmio/gearbox
package gearbox
