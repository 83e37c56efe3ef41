// Package cmd implements the kclique command-line surface described in
// §6: `kclique <p> <k> <edgelist_path>`.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/junjiewwang/kclique/internal/pipeline"
	"github.com/junjiewwang/kclique/pkg/config"
	kcerrors "github.com/junjiewwang/kclique/pkg/errors"
	"github.com/junjiewwang/kclique/pkg/telemetry"
	"github.com/junjiewwang/kclique/pkg/utils"
)

var (
	verbose    bool
	noTruss    bool
	profile    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "kclique <p> <k> <edgelist_path>",
	Short: "Count k-cliques in a large undirected graph",
	Long: `kclique enumerates and counts all k-cliques in a large, undirected,
simple graph using a degeneracy-ordered, color-pruned, node-parallel search,
optionally preceded by a k-truss edge filter.`,
	Args: cobra.ExactArgs(3),
	Example: `  # Count triangles with 8 worker threads
  kclique 8 3 graph.txt

  # Skip the k-truss pre-filter and print per-stage timings
  kclique 8 3 graph.txt --no-truss --profile`,
	RunE: runKClique,
}

// Execute runs the root command and exits the process with code 1 on any
// error, per §6's "Exit 0 on success, 1 on argument error" — every
// user-visible failure, not only argument errors, is fatal with no
// partial result (§7), so a uniform exit code covers both.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&noTruss, "no-truss", false, "Skip the k-truss pre-filter and list cliques on the unfiltered DAG")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Print a per-stage timing summary after the count")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a pipeline config file (defaults to ./config.yaml if present)")
	rootCmd.SilenceUsage = true
}

func runKClique(cmd *cobra.Command, args []string) error {
	logLevel := utils.LevelInfo
	if verbose {
		logLevel = utils.LevelDebug
	}
	logger := utils.NewDefaultLogger(logLevel, os.Stdout)

	p, err := strconv.Atoi(args[0])
	if err != nil || p <= 0 {
		return kcerrors.Wrap(kcerrors.CodeConfigError, fmt.Sprintf("invalid worker thread count %q: must be a positive integer", args[0]), err)
	}

	k, err := strconv.Atoi(args[1])
	if err != nil || k < 2 || k > 255 {
		return kcerrors.Wrap(kcerrors.CodeConfigError, fmt.Sprintf("invalid clique size %q: must be an integer in [2, 255]", args[1]), err)
	}

	edgelistPath := args[2]
	if _, statErr := os.Stat(edgelistPath); statErr != nil {
		return kcerrors.Wrap(kcerrors.CodeConfigError, fmt.Sprintf("edge list %q is not accessible", edgelistPath), statErr)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	shutdown, err := telemetry.Init(ctx, telemetry.DefaultConfig(), logger)
	if err != nil {
		logger.Warn("telemetry disabled: %v", err)
	}
	defer shutdown(ctx)

	trussEnabled := cfg.Pipeline.TrussEnabled && !noTruss

	logger.Info("Reading edge list from %s", edgelistPath)
	result, err := pipeline.Run(ctx, pipeline.Options{
		EdgelistPath: edgelistPath,
		K:            k,
		Workers:      p,
		TrussEnabled: trussEnabled,
		Dedup:        cfg.Pipeline.Dedup,
		StartV:       0,
		Stride:       1,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Number of %d-cliques: %d\n", k, result.Count)

	if profile {
		result.Timer.PrintSummary()
	}
	return nil
}
