package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/hexpath/internal/errors"
)

type engine struct {
	logger *slog.Logger
}

// Config holds the dependencies for the engine
type Config struct {
	// Logger receives debug output for each search. Defaults to slog.Default.
	Logger *slog.Logger
}

// Validate ensures the config is usable
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

// New creates a new Dijkstra engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &engine{logger: logger}, nil
}

// FindPath implements Engine
func (e *engine) FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := search(input.Grid, input.Source, input.Target)
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "path found",
		"source", input.Source.String(),
		"target", input.Target.String(),
		"length", len(out.Path),
		"finalized", out.Finalized,
	)

	return out, nil
}
