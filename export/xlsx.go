package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/konbassmio/gearbox/gear"
	"github.com/konbassmio/gearbox/sizing"
)

// Sentinel errors for spreadsheet export.
var (
	// ErrNilSolutionSet indicates a nil set passed to WriteXLSX.
	ErrNilSolutionSet = errors.New("export: solution set is nil")

	// ErrEmptyPath indicates an empty target file path.
	ErrEmptyPath = errors.New("export: file path is empty")
)

// designSheet is the sheet name for design exports.
const designSheet = "Designs"

// moduleSheet is the sheet name for module-sizing exports.
const moduleSheet = "Modules"

// designHeader is the fixed column layout: one row per stage, both gears
// flattened side by side.
var designHeader = []string{
	"Solution",
	"Stage",
	"Stage type",
	"Interstage link",
	"Realized ratio",
	"Driver teeth",
	"Driven teeth",
	"Driver axis",
	"Driven axis",
	"Driver torque (N·mm)",
	"Driven torque (N·mm)",
	"Driver min module (mm)",
	"Driven min module (mm)",
}

// WriteXLSX writes one row per stage of every design in set to path.
// Rows are ordered by solution index, then stage level — the set's own
// discovery order, already sorted.
func WriteXLSX(path string, set *gear.SolutionSet) error {
	if path == "" {
		return ErrEmptyPath
	}
	if set == nil {
		return ErrNilSolutionSet
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", designSheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := writeRow(f, designSheet, 1, toAny(designHeader)); err != nil {
		return err
	}

	row := 2
	for i, d := range set.Designs() {
		for _, s := range d.Stages {
			values := []any{
				i + 1,
				s.Level,
				s.Link.String(),
				s.Interstage.String(),
				s.Ratio,
				s.Driver.Teeth,
				s.Driven.Teeth,
				s.Driver.Axis,
				s.Driven.Axis,
				s.Driver.Torque,
				s.Driven.Torque,
				s.Driver.MinModule,
				s.Driven.MinModule,
			}
			if err := writeRow(f, designSheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}

	return nil
}

// WriteModuleXLSX writes the sizing result to path: the strength-derived
// minimum module, then one row per feasible candidate.
func WriteModuleXLSX(path string, res sizing.Result) error {
	if path == "" {
		return ErrEmptyPath
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", moduleSheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := writeRow(f, moduleSheet, 1, []any{"Feasible module (mm)", "Min required (mm)"}); err != nil {
		return err
	}
	for i, m := range res.Candidates {
		values := []any{m}
		if i == 0 {
			values = append(values, res.MinRequired)
		}
		if err := writeRow(f, moduleSheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}

	return nil
}

// writeRow sets values left-to-right starting at column A of the given row.
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		if err = f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("export: set %s!%s: %w", sheet, cell, err)
		}
	}

	return nil
}

// toAny widens a string slice for writeRow.
func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}
