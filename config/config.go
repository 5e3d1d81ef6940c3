// Package config holds the tunable thresholds of a clique-discovery run and
// loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/corrclique/feature"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of run parameters. Zero values are not defaults;
// start from Default.
type Config struct {
	// ScoreThreshold: features must score strictly above this to enter the graph.
	ScoreThreshold float64 `yaml:"score_threshold"`

	// MaxNodes caps the graph size; the lowest-scoring qualifying features stay.
	MaxNodes int `yaml:"max_nodes"`

	// DropFraction of the strongest edges (by |r|) is discarded, truncated.
	DropFraction float64 `yaml:"drop_fraction"`

	// MaxAbsCorrelation is the largest |r| an edge may keep.
	MaxAbsCorrelation float64 `yaml:"max_abs_correlation"`

	// EdgeWeight and NodeWeight scale the two score terms.
	EdgeWeight float64 `yaml:"edge_weight"`
	NodeWeight float64 `yaml:"node_weight"`

	// Workers > 1 runs the clique search's root branches concurrently.
	Workers int `yaml:"workers"`

	// MaxCliques aborts a run that finds more maximal cliques; 0 is unlimited.
	MaxCliques int `yaml:"max_cliques"`
}

// Default returns the standard parameters.
func Default() Config {
	return Config{
		ScoreThreshold:    feature.DefaultScoreThreshold,
		MaxNodes:          feature.DefaultMaxNodes,
		DropFraction:      feature.DefaultDropFraction,
		MaxAbsCorrelation: feature.DefaultMaxAbsWeight,
		EdgeWeight:        1,
		NodeWeight:        1,
		Workers:           1,
		MaxCliques:        0,
	}
}

// Load reads a YAML file over Default, so absent keys keep their defaults,
// and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field's range.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.ScoreThreshold):
		return fmt.Errorf("%w: score_threshold is NaN", ErrInvalid)
	case c.MaxNodes < 1:
		return fmt.Errorf("%w: max_nodes must be >= 1, got %d", ErrInvalid, c.MaxNodes)
	case c.DropFraction < 0 || c.DropFraction >= 1 || math.IsNaN(c.DropFraction):
		return fmt.Errorf("%w: drop_fraction must be in [0,1), got %v", ErrInvalid, c.DropFraction)
	case c.MaxAbsCorrelation < 0 || c.MaxAbsCorrelation > 1 || math.IsNaN(c.MaxAbsCorrelation):
		return fmt.Errorf("%w: max_abs_correlation must be in [0,1], got %v", ErrInvalid, c.MaxAbsCorrelation)
	case !(c.EdgeWeight >= 0) || math.IsInf(c.EdgeWeight, 0):
		return fmt.Errorf("%w: edge_weight must be finite and >= 0, got %v", ErrInvalid, c.EdgeWeight)
	case !(c.NodeWeight >= 0) || math.IsInf(c.NodeWeight, 0):
		return fmt.Errorf("%w: node_weight must be finite and >= 0, got %v", ErrInvalid, c.NodeWeight)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	case c.MaxCliques < 0:
		return fmt.Errorf("%w: max_cliques must be >= 0, got %d", ErrInvalid, c.MaxCliques)
	}

	return nil
}

// FilterOptions converts the node and edge thresholds to feature options.
func (c Config) FilterOptions() []feature.Option {
	return []feature.Option{
		feature.WithScoreThreshold(c.ScoreThreshold),
		feature.WithMaxNodes(c.MaxNodes),
		feature.WithDropFraction(c.DropFraction),
		feature.WithMaxAbsWeight(c.MaxAbsCorrelation),
	}
}
