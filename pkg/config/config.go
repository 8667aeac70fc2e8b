// Package config holds the benchmark's run parameters: graph size, start
// node, random source and execution mode. Values come from defaults, an
// optional YAML file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-bfs/pkg/graph"
	"github.com/dd0wney/cluso-bfs/pkg/parallel"
	"github.com/dd0wney/cluso-bfs/pkg/prng"
)

// validate is a singleton validator instance
var validate = validator.New()

// Config is one benchmark run's parameters
type Config struct {
	Nodes int   `yaml:"nodes" validate:"gt=0"`
	Edges int   `yaml:"edges" validate:"gte=0"`
	Start int   `yaml:"start" validate:"gte=0"`
	Seed  int64 `yaml:"seed"`
	// PRNG selects the random source; glibc reproduces C rand()
	PRNG string `yaml:"prng" validate:"oneof=glibc go"`
	// Workers: 0 runs the sequential traversal, -1 uses every CPU,
	// N > 0 runs the parallel traversal on N workers, up to parallel.MaxWorkers
	Workers  int    `yaml:"workers" validate:"gte=-1"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// MaxMemoryBytes caps the estimated adjacency size; 0 falls back to
	// SystemMemoryLimit
	MaxMemoryBytes uint64 `yaml:"max_memory_bytes"`
	Quiet          bool   `yaml:"quiet"`
}

// Default returns the parameters of the classic benchmark run: one million
// nodes, ten million edge attempts, start node 0, srand(42).
func Default() Config {
	return Config{
		Nodes:    graph.DefaultNodes,
		Edges:    graph.DefaultEdges,
		Start:    0,
		Seed:     graph.DefaultSeed,
		PRNG:     prng.KindGlibc,
		Workers:  0,
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parallel reports whether the parallel traversal should run
func (c Config) Parallel() bool {
	return c.Workers != 0
}

// Validate checks every field and returns all problems joined. Each problem
// wraps graph.ErrInvalidArgument.
func (c Config) Validate() error {
	var errs []error

	if err := validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		for _, e := range validationErrs {
			errs = append(errs, formatFieldError(e))
		}
	}

	if c.Nodes > 0 && c.Start >= c.Nodes {
		errs = append(errs, fmt.Errorf("Start: %d outside [0, %d): %w", c.Start, c.Nodes, graph.ErrInvalidArgument))
	}
	if c.Workers > parallel.MaxWorkers {
		errs = append(errs, fmt.Errorf("Workers: must be at most %d, got %d: %w", parallel.MaxWorkers, c.Workers, graph.ErrInvalidArgument))
	}

	return errors.Join(errs...)
}

// formatFieldError converts a validator error to a readable message
func formatFieldError(e validator.FieldError) error {
	field, param := e.Field(), e.Param()

	switch e.Tag() {
	case "gt":
		return fmt.Errorf("%s: must be greater than %s, got %v: %w", field, param, e.Value(), graph.ErrInvalidArgument)
	case "gte":
		return fmt.Errorf("%s: must be at least %s, got %v: %w", field, param, e.Value(), graph.ErrInvalidArgument)
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %q: %w", field, param, e.Value(), graph.ErrInvalidArgument)
	default:
		return fmt.Errorf("%s: validation failed (%s): %w", field, e.Tag(), graph.ErrInvalidArgument)
	}
}
