// SPDX-License-Identifier: MIT
// commands.go — RunE implementations. Each loads its input through tensorio,
// delegates to the library packages and writes to --out or stdout.
//
// Complexity: linear in the file size except reorder, which costs what its
// pipeline steps cost.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/tensorcomp/builder"
	"github.com/katalvlaran/tensorcomp/convert"
	"github.com/katalvlaran/tensorcomp/pipeline"
	"github.com/katalvlaran/tensorcomp/tensor"
	"github.com/katalvlaran/tensorcomp/tensorio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runInspect(cmd *cobra.Command, args []string) error {
	t, err := tensorio.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded tensor", zap.String("file", args[0]), zap.Int("entries", t.NumEntries()))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "entries\t%d\n", t.NumEntries())
	fmt.Fprintf(w, "sorted\tasc=%t desc=%t\n", t.IsSortedByIndex(false), t.IsSortedByIndex(true))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "AXIS\tPOS\tUNIQUE")
	for a, name := range t.AxisNames() {
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, a, t.NumUniqueValues(a))
	}

	return w.Flush()
}

func runReorder(cmd *cobra.Command, args []string) error {
	t, err := tensorio.Load(args[0])
	if err != nil {
		return err
	}

	cfg, err := reorderConfig()
	if err != nil {
		return err
	}
	if err := pipeline.Run(t, cfg, logger); err != nil {
		return err
	}

	return writeTensor(cmd.OutOrStdout(), t)
}

// reorderConfig resolves the pipeline: file first, then flags, then default.
func reorderConfig() (*pipeline.Config, error) {
	if pipelinePath != "" {
		return pipeline.Load(pipelinePath)
	}

	cfg := &pipeline.Config{}
	if len(permutation) > 0 {
		cfg.Steps = append(cfg.Steps, pipeline.Step{Op: pipeline.OpPermute, Perm: permutation})
	}
	if len(moveAxes) > 0 {
		cfg.Steps = append(cfg.Steps, pipeline.Step{Op: pipeline.OpMoveFirst, Axes: moveAxes})
	}
	for _, f := range []struct{ op, dir string }{
		{pipeline.OpSortAxes, sortAxes},
		{pipeline.OpSortEntries, sortEntries},
	} {
		if f.dir == "" {
			continue
		}
		desc, err := parseDirection(f.dir)
		if err != nil {
			return nil, err
		}
		cfg.Steps = append(cfg.Steps, pipeline.Step{Op: f.op, Descending: desc})
	}

	if len(cfg.Steps) == 0 {
		return pipeline.DefaultConfig(), nil
	}

	return cfg, nil
}

func parseDirection(dir string) (bool, error) {
	switch dir {
	case "asc":
		return false, nil
	case "desc":
		return true, nil
	default:
		return false, fmt.Errorf("unknown direction %q (want asc or desc)", dir)
	}
}

func runRandom(cmd *cobra.Command, args []string) error {
	t, err := builder.RandomSparse(randAxes, randExtents, randNNZ, builder.WithSeed(seed))
	if err != nil {
		return err
	}
	logger.Debug("generated tensor",
		zap.Strings("axes", randAxes),
		zap.Ints("extents", randExtents),
		zap.Int("nnz", randNNZ),
		zap.Int64("seed", seed),
	)

	return writeTensor(cmd.OutOrStdout(), t)
}

func runExport(cmd *cobra.Command, args []string) error {
	t, err := tensorio.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := convert.ToTriplets(t, rowAxis, colAxis)
	if err != nil {
		return err
	}
	logger.Info("exporting coordinate matrix",
		zap.Int("rows", tr.NumRows),
		zap.Int("cols", tr.NumCols),
		zap.Int("entries", tr.Len()),
	)

	return writeTo(cmd.OutOrStdout(), func(w io.Writer) error {
		return tensorio.WriteCoordinate(w, tr)
	})
}

func runDivergence(cmd *cobra.Command, args []string) error {
	t, err := tensorio.Load(args[0])
	if err != nil {
		return err
	}

	var acc []float64
	if accPath != "" {
		f, err := os.Open(accPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if acc, err = tensorio.ReadVector(f); err != nil {
			return fmt.Errorf("%s: %w", accPath, err)
		}
	}

	div, err := convert.TensorDivergence(t, fromAxis, toAxis, acc, numCells)
	if err != nil {
		return err
	}
	logger.Info("computed divergence",
		zap.Int("faces", t.NumEntries()),
		zap.Int("cells", numCells),
		zap.Bool("accumulation", acc != nil),
	)

	return writeTo(cmd.OutOrStdout(), func(w io.Writer) error {
		return tensorio.WriteVector(w, div)
	})
}

// writeTensor writes t to --out, or to stdout when --out is empty.
func writeTensor(stdout io.Writer, t *tensor.Tensor[float64]) error {
	return writeTo(stdout, func(w io.Writer) error {
		return tensorio.Write(w, t)
	})
}

func writeTo(stdout io.Writer, write func(io.Writer) error) error {
	if outPath == "" {
		return write(stdout)
	}

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return err
	}
	logger.Info("wrote file", zap.String("path", outPath), zap.Int("bytes", buf.Len()))

	return nil
}
