// SPDX-License-Identifier: MIT

// Command tensorcomp is the command line front-end of the tensorcomp module.
//
// Subcommands:
//   • inspect     axes, cardinalities and ordering of a YAML tensor
//   • reorder     apply a pipeline (file, flags or default)
//   • random      seeded random coordinate tensor
//   • export      two axes as a coordinate matrix file
//   • divergence  per-cell signed sum of face fluxes as a vector file
//
// Logging: zap production config built in PersistentPreRunE, --verbose
// lowers the level to Debug, Sync in PersistentPostRun.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	outPath string

	// reorder
	pipelinePath string
	moveAxes     []string
	permutation  []int
	sortAxes     string
	sortEntries  string

	// random
	randAxes    []string
	randExtents []int
	randNNZ     int
	seed        int64

	// export
	rowAxis string
	colAxis string

	// divergence
	fromAxis string
	toAxis   string
	numCells int
	accPath  string

	// Logger
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tensorcomp",
		Short: "named-axis sparse coordinate tensor toolkit",
		Long: `tensorcomp inspects and reorders coordinate tensors stored as YAML
documents (axes, coefficients, axis-major indices) and exports them to
coordinate matrix files for external sparse solvers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "show axes, cardinalities and ordering of a tensor",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	reorderCmd := &cobra.Command{
		Use:   "reorder [file]",
		Short: "apply a reorder pipeline to a tensor",
		Long: `reorder applies either a YAML pipeline (--pipeline) or the steps given by
flags, in this order: --permute, --move, --sort-axes, --sort-entries.
Without any of them the default pipeline runs (sort axes, then entries).`,
		Args: cobra.ExactArgs(1),
		RunE: runReorder,
	}
	reorderCmd.Flags().StringVar(&pipelinePath, "pipeline", "", "pipeline config file (yaml)")
	reorderCmd.Flags().IntSliceVar(&permutation, "permute", nil, "explicit axis permutation")
	reorderCmd.Flags().StringSliceVar(&moveAxes, "move", nil, "axes to move first")
	reorderCmd.Flags().StringVar(&sortAxes, "sort-axes", "", "sort axes by cardinality: asc|desc")
	reorderCmd.Flags().StringVar(&sortEntries, "sort-entries", "", "sort entries lexicographically: asc|desc")
	reorderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "generate a random coordinate tensor",
		Args:  cobra.NoArgs,
		RunE:  runRandom,
	}
	randomCmd.Flags().StringSliceVar(&randAxes, "axes", []string{"cell", "node"}, "axis names")
	randomCmd.Flags().IntSliceVar(&randExtents, "extents", []int{10, 4}, "label range per axis")
	randomCmd.Flags().IntVar(&randNNZ, "nnz", 20, "number of entries")
	randomCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	randomCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export two axes as a coordinate matrix file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&rowAxis, "row", "", "row axis")
	exportCmd.Flags().StringVar(&colAxis, "col", "", "column axis")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	_ = exportCmd.MarkFlagRequired("row")
	_ = exportCmd.MarkFlagRequired("col")

	divergenceCmd := &cobra.Command{
		Use:   "divergence [file]",
		Short: "sum signed face fluxes per cell into a vector file",
		Long: `divergence reads a face tensor whose coefficients are fluxes and whose
--from and --to axes hold the two cells of every face. Each flux is added to
its --from cell and subtracted from its --to cell. An optional --acc vector
file seeds the result.`,
		Args: cobra.ExactArgs(1),
		RunE: runDivergence,
	}
	divergenceCmd.Flags().StringVar(&fromAxis, "from", "", "axis holding the first cell of each face")
	divergenceCmd.Flags().StringVar(&toAxis, "to", "", "axis holding the second cell of each face")
	divergenceCmd.Flags().IntVar(&numCells, "cells", 0, "number of cells")
	divergenceCmd.Flags().StringVar(&accPath, "acc", "", "accumulation vector file (optional)")
	divergenceCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	_ = divergenceCmd.MarkFlagRequired("from")
	_ = divergenceCmd.MarkFlagRequired("to")
	_ = divergenceCmd.MarkFlagRequired("cells")

	rootCmd.AddCommand(inspectCmd, reorderCmd, randomCmd, exportCmd, divergenceCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
