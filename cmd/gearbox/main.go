// Command gearbox searches feasible multi-stage gear-train designs for a
// target overall speed ratio, sizes every gear for strength, and reports or
// exports the accepted designs.
//
// Two subcommands:
//
//	gearbox design   — the design search (flags, --params YAML, or --interactive)
//	gearbox modules  — the standalone module-sizing calculator
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// verbose switches the logger to debug level.
	verbose bool

	// logger is initialized once per invocation in PersistentPreRunE.
	logger *zap.Logger
)

// rootCmd is the base command; running it bare prints help.
var rootCmd = &cobra.Command{
	Use:   "gearbox",
	Short: "gearbox — multi-stage gear-train design search",
	Long: `gearbox explores gearbox layouts before detailed CAD work: given a
target overall speed ratio, a tolerance, and a teeth-count range, it
enumerates feasible multi-stage designs, propagates torque through every
stage, and sizes each gear with a simplified strength formula.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(designCmd)
	rootCmd.AddCommand(modulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
