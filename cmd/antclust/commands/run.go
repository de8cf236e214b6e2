package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/antclust/antgrid"
	"github.com/katalvlaran/antclust/config"
	"github.com/katalvlaran/antclust/core"
	"github.com/katalvlaran/antclust/directwalk"
)

var (
	inputPath  string
	outputPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Cluster a CSV dataset with the configured engine",
	RunE:  runClustering,
}

func init() {
	runCmd.Flags().StringVarP(&inputPath, "input", "i", "", "CSV file of feature vectors, one point per row")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write per-point cluster labels here (CSV)")
	_ = runCmd.MarkFlagRequired("input")
}

func runClustering(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ds, err := readPoints(inputPath)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID), zap.String("engine", cfg.Engine))
	log.Info("dataset loaded",
		zap.String("input", inputPath),
		zap.Int("points", ds.Len()),
		zap.Int("dim", ds.Dim()))

	cl, err := buildClusterer(cfg, log)
	if err != nil {
		return err
	}
	if err := cl.Build(ds); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderSummary(runID, cfg.Engine, ds, cl))

	if outputPath != "" {
		if err := writeAssignments(outputPath, cl.Assignments()); err != nil {
			return err
		}
		log.Info("assignments written", zap.String("output", outputPath))
	}
	return nil
}

// loadConfig reads the -c file when given, otherwise runs on defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	return config.Load(cfgFile)
}

func buildClusterer(cfg *config.Config, log *zap.Logger) (core.Clusterer, error) {
	switch cfg.Engine {
	case config.EngineDirectWalk:
		opts := cfg.DirectWalkOptions()
		opts.Logger = log
		return directwalk.New(opts)
	case config.EngineAntGrid:
		opts := cfg.AntGridOptions()
		opts.Logger = log
		return antgrid.New(opts)
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}
