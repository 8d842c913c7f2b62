// Package export flattens a SolutionSet into the two consumer-facing
// surfaces: a spreadsheet (.xlsx, one row per stage with every gear field
// populated) and a plain-text console report with per-stage lines and a
// transmission-chain diagram.
//
// The engine defines no file format of its own — this package owns the
// tabular layout. Columns mirror the classic export: solution and stage
// indices, link types, realized ratio, teeth, axes, torques (N·mm) and
// minimum modules (mm) for both gears of every stage.
//
// A matching writer for the standalone module-sizing calculator
// (WriteModuleXLSX / WriteModuleReport) lives here too.
package export
