// SPDX-License-Identifier: MIT
// Package: densim/config
//
// config.go — run configuration: defaults, file loading, validation.
//
// Determinism:
//   - Load always starts from Default(); keys absent from the file keep
//     their default value.

// Package config holds the single configuration struct of a densim run.
// It replaces process-wide constants: every component receives its values
// explicitly through its constructor.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densim/baseline"
	"github.com/katalvlaran/densim/flow"
	"github.com/katalvlaran/densim/search"
	"github.com/katalvlaran/densim/similarity"
	"github.com/katalvlaran/densim/tradeoff"
)

// ErrInvalidConfig indicates an unreadable, unknown or out-of-range setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of tunables.
type Config struct {
	// Precision is the gap below which a fixed-lambda loop stops.
	Precision float64 `yaml:"precision" toml:"precision"`
	// MaxIters bounds the iterations of one fixed-lambda loop.
	MaxIters int `yaml:"max_iters" toml:"max_iters"`
	// AllowedDifference is the tolerance under which two solutions are equal.
	AllowedDifference float64 `yaml:"allowed_difference" toml:"allowed_difference"`

	Search     Search     `yaml:"search" toml:"search"`
	Baseline   Baseline   `yaml:"baseline" toml:"baseline"`
	Similarity Similarity `yaml:"similarity" toml:"similarity"`
	Flow       Flow       `yaml:"flow" toml:"flow"`
}

// Search configures the breakpoint search.
type Search struct {
	LambdaMin float64 `yaml:"lambda_min" toml:"lambda_min"`
	LambdaMax float64 `yaml:"lambda_max" toml:"lambda_max"`
	// LambdaDelta of 0 derives 0.001/E² from the loaded graph.
	LambdaDelta float64 `yaml:"lambda_delta" toml:"lambda_delta"`
	// MaxProbes of 0 means unbounded.
	MaxProbes int `yaml:"max_probes" toml:"max_probes"`
	// TimeBudget of 0 means unbounded.
	TimeBudget time.Duration `yaml:"time_budget" toml:"time_budget"`
}

// Baseline configures the fixed-grid sweep.
type Baseline struct {
	Kind   string  `yaml:"kind" toml:"kind"`
	MaxMu  float64 `yaml:"max_mu" toml:"max_mu"`
	Points int     `yaml:"points" toml:"points"`
}

// Similarity selects the pair enumeration.
type Similarity struct {
	Strategy   string `yaml:"strategy" toml:"strategy"`
	LinkPolicy string `yaml:"link_policy" toml:"link_policy"`
}

// Flow selects the max-flow engine of the in-memory oracle.
type Flow struct {
	Algorithm string  `yaml:"algorithm" toml:"algorithm"`
	Epsilon   float64 `yaml:"epsilon" toml:"epsilon"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Precision:         tradeoff.DefaultPrecision,
		MaxIters:          tradeoff.DefaultMaxIters,
		AllowedDifference: tradeoff.AllowedDifference,
		Search: Search{
			LambdaMin: 0,
			LambdaMax: search.DefaultLambdaMax,
		},
		Baseline: Baseline{
			Kind:   baseline.Similarity.String(),
			MaxMu:  baseline.DefaultMaxMu,
			Points: baseline.DefaultPoints,
		},
		Similarity: Similarity{
			Strategy:   similarity.LayerIndex.String(),
			LinkPolicy: similarity.LinkBoolean.String(),
		},
		Flow: Flow{
			Algorithm: "dinic",
			Epsilon:   flow.DefaultOptions().Epsilon,
		},
	}
}

// Load reads path (.yaml, .yml or .toml) over Default() and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return cfg, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalidConfig, path, extra)
		}
	default:
		return cfg, fmt.Errorf("%w: unsupported extension %q", ErrInvalidConfig, ext)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if !(c.Precision > 0) {
		bad("precision must be positive, got %g", c.Precision)
	}
	if c.MaxIters < 1 {
		bad("max_iters must be at least 1, got %d", c.MaxIters)
	}
	if c.AllowedDifference < 0 {
		bad("allowed_difference must not be negative, got %g", c.AllowedDifference)
	}

	s := c.Search
	if s.LambdaMin < 0 || s.LambdaMax < s.LambdaMin || math.IsInf(s.LambdaMax, 0) {
		bad("search range [%g, %g] must be finite, non-negative and ordered", s.LambdaMin, s.LambdaMax)
	}
	if s.LambdaDelta < 0 {
		bad("search.lambda_delta must not be negative, got %g", s.LambdaDelta)
	}
	if s.MaxProbes < 0 || s.MaxProbes == 1 {
		bad("search.max_probes must be 0 or at least 2, got %d", s.MaxProbes)
	}
	if s.TimeBudget < 0 {
		bad("search.time_budget must not be negative, got %s", s.TimeBudget)
	}

	if _, err := baseline.ParseKind(c.Baseline.Kind); err != nil {
		errs = append(errs, err)
	}
	if !(c.Baseline.MaxMu > 0) || math.IsInf(c.Baseline.MaxMu, 0) {
		bad("baseline.max_mu must be positive and finite, got %g", c.Baseline.MaxMu)
	}
	if c.Baseline.Points < 2 {
		bad("baseline.points must be at least 2, got %d", c.Baseline.Points)
	}

	if _, err := similarity.ParseStrategy(c.Similarity.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := similarity.ParseLinkPolicy(c.Similarity.LinkPolicy); err != nil {
		errs = append(errs, err)
	}
	if _, err := flow.ParseAlgorithm(c.Flow.Algorithm); err != nil {
		errs = append(errs, err)
	}
	if c.Flow.Epsilon < 0 {
		bad("flow.epsilon must not be negative, got %g", c.Flow.Epsilon)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
