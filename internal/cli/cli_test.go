// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densim/metagraph"
	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/similarity"
)

// A five-edge matching in layer 0 and a triangle in layer 1.
const matchingAndTriangle = "0 1 2\n0 3 4\n0 5 6\n0 7 8\n0 9 10\n1 11 12\n1 12 13\n1 11 13\n"

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// execute runs one densim invocation and returns its report output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(&out, io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			require.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLoggerContext(t *testing.T) {
	require.Equal(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	require.Same(t, l, loggerFromContext(ctx))

	newProgress(loggerFromContext(ctx)).done("Computed")
	require.Contains(t, buf.String(), "Computed (")
}

func TestDatasetName(t *testing.T) {
	require.Equal(t, "aarhus", datasetName("data/aarhus.edges"))
	require.Equal(t, "aarhus", datasetName("out/metagraph_aarhus.json"))
	require.Equal(t, "plain", datasetName("plain"))
}

func TestConstructThenSearch(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "mt.edges", matchingAndTriangle)
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "construct", "-i", input, "-o", outDir)
	require.NoError(t, err)
	require.Contains(t, out, "metagraph_mt.txt")

	netPath := filepath.Join(outDir, "metagraph_mt.txt")
	snapPath := filepath.Join(outDir, "metagraph_mt.json")
	net, err := metagraph.ReadDIMACSFile(netPath)
	require.NoError(t, err)
	require.Equal(t, metagraph.Parametric, net.Kind)
	require.Equal(t, 8, net.ElementCount)
	snap, err := similarity.LoadSnapshotFile(snapPath)
	require.NoError(t, err)
	require.NotEmpty(t, snap.RunID)

	out, err = execute(t, "search", "--snapshot", snapPath, "--network", netPath,
		"--lambda-min", "0.01", "--lambda-max", "3", "--lambda-delta", "0.001", "--json", "-p")
	require.NoError(t, err)

	var rep searchReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, "mt", rep.Dataset)
	require.Len(t, rep.Solutions, 2)
	require.InDelta(t, 2.0, rep.Solutions[0].Similarity, 1e-9)
	require.Len(t, rep.Solutions[0].Elements, 5)
	require.Equal(t, multilayer.EdgeElement(11, 12), rep.Solutions[1].Elements[0])
	require.Zero(t, rep.NonConverged)
}

func TestSearchTextReport(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "mt.edges", matchingAndTriangle)
	cfg := writeFile(t, dir, "run.yaml", "search:\n  lambda_min: 0.01\n  lambda_max: 3\n  max_probes: 3\n")

	out, err := execute(t, "--config", cfg, "--metrics-addr", "127.0.0.1:0", "search", "-i", input, "-p")
	require.NoError(t, err)
	require.Contains(t, out, "Solutions for mt")
	require.Contains(t, out, "Edgelist: (1, 2) (3, 4)")
	require.Contains(t, out, "budget exhausted")
}

func TestBaselineJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "tri.edges", "0 1 2\n1 1 2\n0 2 3\n1 1 3\n")

	for _, kind := range []string{"similarity", "density"} {
		out, err := execute(t, "baseline", "-i", input, "--kind", kind, "--points", "5", "--json")
		require.NoError(t, err, kind)
		var rep baselineReport
		require.NoError(t, json.Unmarshal([]byte(out), &rep), kind)
		require.Equal(t, kind, rep.Kind)
		require.Len(t, rep.Points, 5)
		for _, p := range rep.Points {
			require.InDelta(t, 1.0/3, p.Similarity, 1e-9, kind)
			require.InDelta(t, 1.0, p.Density, 1e-9, kind)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "mt.edges", matchingAndTriangle)

	_, err := execute(t, "construct", "-i", input, "--mode", "node")
	require.ErrorContains(t, err, "edge-mode only")

	_, err = execute(t, "search")
	require.ErrorContains(t, err, "required")

	_, err = execute(t, "search", "-i", input, "--lambda-min", "5", "--lambda-max", "1")
	require.Error(t, err)

	bad := writeFile(t, dir, "bad.edges", "0 1 x\n")
	_, err = execute(t, "search", "-i", bad)
	require.ErrorIs(t, err, multilayer.ErrMalformedInput)
}
