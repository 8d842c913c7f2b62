package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konbassmio/gearbox/export"
	"github.com/konbassmio/gearbox/sizing"
)

// modules flags; torque is N·m for parity with the design command and is
// converted to the N·mm the strength formula expects.
var (
	modTorque      float64
	modShear       float64
	modTensile     float64
	modMin         float64
	modMax         float64
	modStep        float64
	modInteractive bool
	modXLSX        string
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List standard module values meeting a strength requirement",
	Long: `Derives the minimum tooth module able to carry a torque from the
shear/tensile strength formula, generates the candidate library
min, min+step, …, max, and keeps the values at or above the minimum.

This utility is independent of the design search; it shares only the
strength formula.`,
	Example: `  gearbox modules --torque 10 --shear 50 --tensile 80 --min 1 --max 5 --step 0.25
  gearbox modules --interactive --xlsx modules.xlsx`,
	RunE: runModules,
}

func init() {
	fl := modulesCmd.Flags()
	fl.Float64Var(&modTorque, "torque", 0, "transmitted torque, N·m")
	fl.Float64Var(&modShear, "shear", 0, "material shear strength τ, MPa")
	fl.Float64Var(&modTensile, "tensile", 0, "material tensile strength σ, MPa")
	fl.Float64Var(&modMin, "min", 0, "smallest candidate module, mm")
	fl.Float64Var(&modMax, "max", 0, "largest candidate module, mm")
	fl.Float64Var(&modStep, "step", 0.25, "candidate increment, mm")
	fl.BoolVarP(&modInteractive, "interactive", "i", false, "prompt for parameters on stdin")
	fl.StringVar(&modXLSX, "xlsx", "", "export feasible modules to this .xlsx file")
}

func runModules(cmd *cobra.Command, _ []string) error {
	var (
		params sizing.Params
		err    error
	)
	if modInteractive {
		params, err = promptModuleParams(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	} else {
		params = sizing.Params{
			Torque:    modTorque * 1000, // N·m → N·mm
			Tau:       modShear,
			Sigma:     modTensile,
			MinModule: modMin,
			MaxModule: modMax,
			Step:      modStep,
		}
	}

	res, err := sizing.Feasible(params)
	if err != nil {
		return err
	}
	logger.Info("module sizing finished",
		zap.Float64("min_required_mm", res.MinRequired),
		zap.Int("candidates", len(res.Candidates)),
	)

	if err = export.WriteModuleReport(cmd.OutOrStdout(), res); err != nil {
		return err
	}

	if modXLSX != "" {
		if err = export.WriteModuleXLSX(modXLSX, res); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d module(s) to %s\n", len(res.Candidates), modXLSX)
	}

	return nil
}
