// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/densim/metagraph"
	"github.com/katalvlaran/densim/mincut"
	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/similarity"
	"github.com/katalvlaran/densim/tradeoff"
)

// dataset is a loaded graph with its similarity index.
type dataset struct {
	name  string
	graph *multilayer.Graph
	index *similarity.Index
}

// loadInput reads an edge-list file in mode and computes its index.
func (c *CLI) loadInput(ctx context.Context, path string, mode multilayer.Mode) (*dataset, error) {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	g, err := multilayer.LoadFile(path, mode)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d %s elements over %d nodes", g.Len(), mode, g.NodeCount()))

	opts, err := c.cfg.SimilarityOptions()
	if err != nil {
		return nil, err
	}
	prog = newProgress(logger)
	x, err := similarity.Compute(g, opts...)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Computed %d similar and %d linked pairs", x.SimilarityCount(), x.LinkCount()))

	return &dataset{name: datasetName(path), graph: g, index: x}, nil
}

// loadSnapshot restores a dataset saved by construct.
func (c *CLI) loadSnapshot(ctx context.Context, path string) (*dataset, error) {
	prog := newProgress(loggerFromContext(ctx))
	s, err := similarity.LoadSnapshotFile(path)
	if err != nil {
		return nil, err
	}
	g, x, err := s.Restore()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Restored %d %s elements from snapshot", g.Len(), g.Mode()))

	return &dataset{name: datasetName(path), graph: g, index: x}, nil
}

// datasetName is the file name without directory, extension or the
// "metagraph_" prefix of construct outputs.
func datasetName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return strings.TrimPrefix(base, "metagraph_")
}

// openSolver opens an oracle session over net and returns a solver on it.
// The caller closes the session.
func (c *CLI) openSolver(ctx context.Context, net *metagraph.Network) (*mincut.Session, *tradeoff.Solver, error) {
	oracle, err := c.cfg.Oracle()
	if err != nil {
		return nil, nil, err
	}
	sess, err := mincut.Open(oracle, net)
	if err != nil {
		return nil, nil, err
	}
	solver, err := tradeoff.NewSolver(sess, c.cfg.SolverOptions(tradeoff.WithLogger(loggerFromContext(ctx)))...)
	if err != nil {
		_ = sess.Close()
		return nil, nil, err
	}

	return sess, solver, nil
}
