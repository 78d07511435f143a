// SPDX-License-Identifier: MIT

// Package cli implements the densim command-line interface.
//
// # Commands
//
//   - construct: build the parametric or baseline network of an input and
//     write it as a DIMACS file next to a similarity snapshot
//   - search: enumerate the distinct density/similarity trade-off solutions
//   - baseline: run a fixed-grid baseline sweep
//
// # Logging
//
// Every command supports --verbose (-v) for debug-level logging. The logger
// travels in context.Context and carries the run id of the invocation.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densim/config"
	"github.com/katalvlaran/densim/metrics"
)

const appName = "densim"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds the state shared by all commands of one invocation.
type CLI struct {
	Logger *log.Logger

	out io.Writer

	configPath  string
	verbose     bool
	metricsAddr string

	cfg     config.Config
	runID   string
	metrics *metrics.Server
}

// New returns a CLI writing reports to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "densim finds dense and similar subgraphs of multilayer graphs",
		Long: `densim extracts from a multilayer graph the subsets that jointly maximize
structural density and multilayer (Jaccard) similarity, enumerating every
distinct optimal trade-off over a range of the penalty lambda.`,
		SilenceUsage:       true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "configuration file (.yaml, .yml or .toml)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	root.AddCommand(c.constructCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.baselineCommand())

	return root
}

// setup loads the configuration, tags the logger with a run id and starts
// the metrics endpoint when requested.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.runID = uuid.NewString()

	logger := c.Logger.With("run", c.runID[:8])
	if c.metricsAddr != "" {
		srv, err := metrics.Serve(c.metricsAddr)
		if err != nil {
			return fmt.Errorf("metrics endpoint: %w", err)
		}
		c.metrics = srv
		logger.Info("serving metrics", "addr", srv.Addr())
	}
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}

func (c *CLI) teardown(cmd *cobra.Command, _ []string) error {
	if c.metrics == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := c.metrics.Shutdown(ctx)
	c.metrics = nil

	return err
}
