package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konbassmio/gearbox/export"
	"github.com/konbassmio/gearbox/train"
)

// errTeethRange is the CLI-level input error for z_min ≥ z_max. The engine
// itself tolerates z_min == z_max (useful in tests); the user-facing
// contract does not.
var errTeethRange = errors.New("input: teeth range requires z-min < z-max")

// design flags; tolerance is user-facing percent, torque is N·m.
var (
	designSolutions   int
	designRatio       float64
	designTolerance   float64
	designMinStages   int
	designMaxStages   int
	designZMin        int
	designZMax        int
	designTorque      float64
	designShear       float64
	designTensile     float64
	designParamsFile  string
	designInteractive bool
	designXLSX        string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Search feasible gear-train designs for a target ratio",
	Long: `Searches multi-stage gear-train designs whose overall speed ratio lands
within a tolerance band around the target, sizing every gear for strength.

Parameters come from flags, from a YAML file (--params), or from an
interactive prompt (--interactive). Results are printed as a console
report; --xlsx additionally exports one spreadsheet row per stage.`,
	Example: `  gearbox design --ratio 18 --tolerance 5 --min-stages 2 --max-stages 2 \
      --z-min 15 --z-max 60 --torque 10 --shear 50 --tensile 80 --solutions 10
  gearbox design --params gearbox.yaml --xlsx designs.xlsx
  gearbox design --interactive`,
	RunE: runDesign,
}

func init() {
	fl := designCmd.Flags()
	fl.IntVarP(&designSolutions, "solutions", "n", 10, "maximum number of accepted designs")
	fl.Float64VarP(&designRatio, "ratio", "r", 0, "target overall speed ratio")
	fl.Float64VarP(&designTolerance, "tolerance", "t", 5, "tolerance on the overall ratio, percent")
	fl.IntVar(&designMinStages, "min-stages", 1, "minimum stage count")
	fl.IntVar(&designMaxStages, "max-stages", 3, "maximum stage count")
	fl.IntVar(&designZMin, "z-min", 15, "minimum teeth count")
	fl.IntVar(&designZMax, "z-max", 60, "maximum teeth count")
	fl.Float64Var(&designTorque, "torque", 0, "input torque, N·m")
	fl.Float64Var(&designShear, "shear", 0, "material shear strength τ, MPa")
	fl.Float64Var(&designTensile, "tensile", 0, "material tensile strength σ, MPa")
	fl.StringVar(&designParamsFile, "params", "", "YAML parameter file (overrides flags)")
	fl.BoolVarP(&designInteractive, "interactive", "i", false, "prompt for parameters on stdin")
	fl.StringVar(&designXLSX, "xlsx", "", "export designs to this .xlsx file")
}

// designConfig assembles the engine Config from whichever input source the
// user chose. Input errors here are fatal: nothing runs on bad parameters.
func designConfig() (train.Config, error) {
	switch {
	case designInteractive:
		return promptDesignConfig(os.Stdin, os.Stdout)
	case designParamsFile != "":
		return loadDesignConfig(designParamsFile)
	default:
		return train.Config{
			MaxSolutions:  designSolutions,
			TargetRatio:   designRatio,
			Tolerance:     designTolerance / 100,
			MinStages:     designMinStages,
			MaxStages:     designMaxStages,
			ZMin:          designZMin,
			ZMax:          designZMax,
			InputTorqueNm: designTorque,
			ShearMPa:      designShear,
			TensileMPa:    designTensile,
		}, nil
	}
}

func runDesign(cmd *cobra.Command, _ []string) error {
	cfg, err := designConfig()
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	// Stricter user-facing contract than the engine's.
	if cfg.ZMin >= cfg.ZMax {
		return errTeethRange
	}

	logger.Debug("starting design search",
		zap.Float64("target", cfg.TargetRatio),
		zap.Float64("tolerance", cfg.Tolerance),
		zap.Int("min_stages", cfg.MinStages),
		zap.Int("max_stages", cfg.MaxStages),
		zap.Int("z_min", cfg.ZMin),
		zap.Int("z_max", cfg.ZMax),
	)

	start := time.Now()
	set, stats, err := train.Search(cfg)
	if err != nil {
		return err
	}
	logger.Info("design search finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("combinations", stats.Combinations),
		zap.Int("accepted", stats.Accepted),
		zap.Int("infeasible", stats.Infeasible),
		zap.Int("ratio_drift", stats.RatioDrift),
		zap.Int("internal", stats.Internal),
	)
	if stats.Internal > 0 {
		logger.Warn("internal rejections encountered; results may be incomplete",
			zap.Int("internal", stats.Internal))
	}

	if err = export.WriteReport(cmd.OutOrStdout(), set, cfg.TargetRatio); err != nil {
		return err
	}
	if set.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no feasible design: widen the teeth range, raise the tolerance, or adjust the stage counts")

		return nil
	}

	if designXLSX != "" {
		if err = export.WriteXLSX(designXLSX, set); err != nil {
			return err
		}
		logger.Info("exported designs", zap.String("path", designXLSX), zap.Int("designs", set.Len()))
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d design(s) to %s\n", set.Len(), designXLSX)
	}

	return nil
}
