// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/tensorcomp/tensorio"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const cellNodeYAML = `axes: [cell, node]
coefficients: [10, 20, 30, 40]
indices: [1, 0, 1, 0, 2, 1, 1, 2]
`

// resetFlags restores every package-level flag to its zero value.
func resetFlags(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	verbose, outPath, pipelinePath = false, "", ""
	moveAxes, permutation = nil, nil
	sortAxes, sortEntries = "", ""
	randAxes, randExtents, randNNZ, seed = nil, nil, 0, 0
	rowAxis, colAxis = "", ""
	fromAxis, toAxis, numCells, accPath = "", "", 0, ""
	t.Cleanup(func() { logger = nil })
}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cellNodeYAML), 0644))
	return path
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestInspectCmd(t *testing.T) {
	resetFlags(t)
	cmd, out := newTestCmd()

	require.NoError(t, runInspect(cmd, []string{writeInput(t)}))

	s := out.String()
	assert.Contains(t, s, "entries  4")
	assert.Contains(t, s, "asc=false desc=false")
	assert.Regexp(t, `cell\s+0\s+2`, s)
	assert.Regexp(t, `node\s+1\s+2`, s)
}

func TestInspectCmd_MissingFile(t *testing.T) {
	resetFlags(t)
	cmd, _ := newTestCmd()
	assert.Error(t, runInspect(cmd, []string{filepath.Join(t.TempDir(), "nope.yaml")}))
}

func TestReorderCmd_Default(t *testing.T) {
	resetFlags(t)
	cmd, out := newTestCmd()

	require.NoError(t, runReorder(cmd, []string{writeInput(t)}))

	got, err := tensorio.Read(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 40, 30, 10}, got.Coefficients())
	assert.True(t, got.IsSortedByIndex(false))
}

func TestReorderCmd_Flags(t *testing.T) {
	resetFlags(t)
	moveAxes = []string{"node"}
	sortEntries = "desc"
	outPath = filepath.Join(t.TempDir(), "out.yaml")
	cmd, out := newTestCmd()

	require.NoError(t, runReorder(cmd, []string{writeInput(t)}))
	assert.Empty(t, out.String(), "written to --out, not stdout")

	got, err := tensorio.Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"node", "cell"}, got.AxisNames())
	assert.Equal(t, []float64{10, 40, 30, 20}, got.Coefficients())
}

func TestReorderCmd_PipelineFile(t *testing.T) {
	resetFlags(t)
	pipelinePath = filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(pipelinePath, []byte("steps:\n  - op: permute\n    perm: [1, 0]\n"), 0644))
	cmd, out := newTestCmd()

	require.NoError(t, runReorder(cmd, []string{writeInput(t)}))
	got, err := tensorio.Read(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, []string{"node", "cell"}, got.AxisNames())
	assert.Equal(t, []float64{10, 20, 30, 40}, got.Coefficients())
}

func TestReorderCmd_Errors(t *testing.T) {
	resetFlags(t)
	sortAxes = "sideways"
	cmd, _ := newTestCmd()
	assert.Error(t, runReorder(cmd, []string{writeInput(t)}))

	resetFlags(t)
	permutation = []int{0, 0}
	assert.Error(t, runReorder(cmd, []string{writeInput(t)}))
}

func TestRandomCmd(t *testing.T) {
	resetFlags(t)
	randAxes = []string{"e", "n", "d"}
	randExtents = []int{5, 3, 2}
	randNNZ = 12
	seed = 7
	cmd, out := newTestCmd()

	require.NoError(t, runRandom(cmd, nil))
	got, err := tensorio.Read(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, 12, got.NumEntries())
	assert.Equal(t, []string{"e", "n", "d"}, got.AxisNames())

	resetFlags(t)
	randAxes = []string{"e"}
	randExtents = []int{0}
	assert.Error(t, runRandom(cmd, nil))
}

func TestExportCmd(t *testing.T) {
	resetFlags(t)
	rowAxis, colAxis = "cell", "node"
	cmd, out := newTestCmd()

	require.NoError(t, runExport(cmd, []string{writeInput(t)}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "2 3 4", lines[2])
	assert.Equal(t, "2 3 10", lines[3])
	assert.Equal(t, "1 3 40", lines[6])

	resetFlags(t)
	rowAxis, colAxis = "cell", "dof"
	assert.Error(t, runExport(cmd, []string{writeInput(t)}))
}

func TestParseDirection(t *testing.T) {
	d, err := parseDirection("asc")
	require.NoError(t, err)
	assert.False(t, d)
	d, err = parseDirection("desc")
	require.NoError(t, err)
	assert.True(t, d)
	_, err = parseDirection("up")
	assert.Error(t, err)
}

func TestRootCmd_Wiring(t *testing.T) {
	root := newRootCmd()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"inspect", "reorder", "random", "export", "divergence"}, names)
}

const facesYAML = `axes: [left, right]
coefficients: [2, 5]
indices: [0, 1, 1, 2]
`

func TestDivergenceCmd(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "faces.yaml")
	require.NoError(t, os.WriteFile(in, []byte(facesYAML), 0644))
	fromAxis, toAxis, numCells = "left", "right", 3
	cmd, out := newTestCmd()

	require.NoError(t, runDivergence(cmd, []string{in}))
	got, err := tensorio.ReadVector(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, -5}, got)

	accPath = filepath.Join(dir, "acc.txt")
	require.NoError(t, os.WriteFile(accPath, []byte("3 1\n1\n1\n1\n"), 0644))
	out.Reset()
	require.NoError(t, runDivergence(cmd, []string{in}))
	got, err = tensorio.ReadVector(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, -4}, got)

	numCells = 2
	assert.Error(t, runDivergence(cmd, []string{in}), "accumulation length disagrees with --cells")

	accPath = ""
	assert.Error(t, runDivergence(cmd, []string{in}), "cell 2 outside [0,2)")

	numCells = 3
	accPath = filepath.Join(dir, "acc.txt")
	require.NoError(t, os.WriteFile(accPath, []byte("3 1\n1\n"), 0644))
	assert.Error(t, runDivergence(cmd, []string{in}), "short accumulation file")
}
