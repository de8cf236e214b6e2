// Package commands wires the antclust CLI: a run command driving the
// clustering engines from a YAML config and a gen command producing
// synthetic Gaussian datasets.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "antclust",
	Short: "Ant-based clustering over CSV feature vectors",
	Long: `antclust clusters numeric datasets with ant colony algorithms.

Two engines are available: directwalk (density-guided deposits on the
dataset itself) and antgrid (pickup and drop sorting on a 2D lattice).
A YAML config selects the engine and its knobs; absent fields fall back
to engine defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports the failure once.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "antclust:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML run configuration (defaults apply when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "development logging at debug level")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genCmd)
}

// newLogger builds the run logger. Verbose mode switches to the
// human-readable development encoder at debug level.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
