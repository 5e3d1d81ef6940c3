// Package main provides the corrclique CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/corrclique/config"
	"github.com/katalvlaran/corrclique/dataset"
	"github.com/katalvlaran/corrclique/pipeline"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries state shared by the subcommands.
type cli struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "corrclique",
		Short: "Find tightly correlated, distribution-distinct feature groups",
		Long: `corrclique scores each feature of a table by how far its values deviate
from the Kolmogorov distribution, links moderately correlated features, and
reports every maximal clique of that graph along with the best-scoring one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if c.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "corrclique v%s (%s)\n", version, commit)
		},
	})

	runCmd := &cobra.Command{
		Use:   "run [csv-file]",
		Short: "Run clique discovery over a CSV file",
		Long: `Reads the header and the feature columns [start, end) of a CSV file and
runs the full pipeline. A non-positive --end counts back from the last
column, so --start 1 --end -1 skips a leading id and a trailing class column.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runRun,
	}
	runCmd.Flags().Int("start", 0, "First feature column (0-based, inclusive)")
	runCmd.Flags().Int("end", 0, "Last feature column (exclusive; <= 0 counts from the end)")
	runCmd.Flags().String("config", "", "YAML file with run parameters")
	runCmd.Flags().Int("workers", 0, "Goroutines for the clique search (overrides config)")
	runCmd.Flags().String("format", "text", "Output format: text or yaml")
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

func (c *cli) runRun(cmd *cobra.Command, args []string) error {
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	cfgPath, _ := cmd.Flags().GetString("config")
	workers, _ := cmd.Flags().GetInt("workers")
	format, _ := cmd.Flags().GetString("format")

	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	c.logger.Debug("loading dataset", zap.String("path", args[0]), zap.Int("start", start), zap.Int("end", end))
	tbl, err := dataset.LoadFile(args[0], dataset.ColumnRange{Start: start, End: end})
	if err != nil {
		return err
	}
	c.logger.Info("dataset loaded", zap.Int("features", tbl.Width()), zap.Int("rows", tbl.Rows))

	res, err := pipeline.Run(cmd.Context(), tbl.Series, tbl.Labels,
		pipeline.WithConfig(cfg),
		pipeline.WithLogger(c.logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "yaml" {
		return writeYAML(out, res)
	}

	return writeText(out, res)
}
