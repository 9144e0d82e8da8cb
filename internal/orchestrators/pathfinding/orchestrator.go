// Package pathfinding adapts raw path requests into engine searches
package pathfinding

//go:generate mockgen -destination=mock/mock_service.go -package=pathfindingmock github.com/KirkDiggler/hexpath/internal/orchestrators/pathfinding Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/hexpath/internal/engine"
	"github.com/KirkDiggler/hexpath/internal/entities"
	"github.com/KirkDiggler/hexpath/internal/errors"
	"github.com/KirkDiggler/hexpath/internal/metrics"
)

const (
	// RequestTypeDijkstra is the only supported search kind
	RequestTypeDijkstra = "dijkstra"

	// Diagnostics returned in place of a path
	MessageNoPath             = "No path found"
	MessageInvalidCharacter   = "Invalid character in graph"
	MessageInvalidRequestType = "Invalid request type"
)

// Service defines the interface for path requests
type Service interface {
	FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error)
}

// Config holds the dependencies for the pathfinding orchestrator
type Config struct {
	Engine engine.Engine

	// Metrics is optional
	Metrics *metrics.Metrics

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	engine  engine.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewOrchestrator creates a new pathfinding orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		engine:  cfg.Engine,
		metrics: cfg.Metrics,
		logger:  logger,
	}, nil
}

// FindPath decodes the grid, dispatches on request type and renders the
// engine result. Bad grids, unknown request types and unreachable targets
// are answered with a single diagnostic message rather than an error.
func (o *orchestrator) FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	label := requestTypeLabel(input.RequestType)

	grid, err := DecodeGrid(input.Grid)
	if err != nil {
		o.logger.InfoContext(ctx, "rejected grid",
			"request_type", input.RequestType,
			"error", err,
		)
		return o.respond(label, OutcomeInvalidGrid, MessageInvalidCharacter), nil
	}

	source := entities.FromOffset(input.Source.Row, input.Source.Col, entities.KindStart)
	target := entities.FromOffset(input.Target.Row, input.Target.Col, entities.KindEnd)

	if input.RequestType != RequestTypeDijkstra {
		o.logger.InfoContext(ctx, "rejected request type",
			"request_type", input.RequestType,
			"error", ErrInvalidRequestType,
		)
		return o.respond(label, OutcomeInvalidRequestType, MessageInvalidRequestType), nil
	}

	start := time.Now()
	result, err := o.engine.FindPath(ctx, &engine.FindPathInput{
		Grid:   grid,
		Source: source,
		Target: target,
	})
	elapsed := time.Since(start)

	if err != nil {
		if errors.IsNotFound(err) {
			o.metrics.ObserveSearch(label, elapsed, 0)
			o.logger.InfoContext(ctx, "no path",
				"source", source.String(),
				"target", target.String(),
				"cells", grid.Size(),
			)
			return o.respond(label, OutcomeNoPath, MessageNoPath), nil
		}
		o.metrics.ObserveRequest(label, "error")
		return nil, errors.Wrap(err, "failed to search grid")
	}

	path := make([]string, 0, len(result.Path))
	for _, h := range result.Path {
		path = append(path, h.String())
	}

	o.metrics.ObserveSearch(label, elapsed, len(path))
	o.logger.InfoContext(ctx, "path found",
		"source", source.String(),
		"target", target.String(),
		"distance", entities.Distance(source, target),
		"length", len(path),
		"cells", grid.Size(),
		"elapsed", elapsed,
	)

	o.metrics.ObserveRequest(label, string(OutcomePath))
	return &FindPathOutput{Path: path, Outcome: OutcomePath}, nil
}

// requestTypeLabel keeps client supplied request types out of metric labels
func requestTypeLabel(requestType string) string {
	if requestType == RequestTypeDijkstra {
		return requestType
	}
	return metrics.OtherRequestType
}

func (o *orchestrator) respond(requestType string, outcome Outcome, message string) *FindPathOutput {
	o.metrics.ObserveRequest(requestType, string(outcome))
	return &FindPathOutput{
		Path:    []string{message},
		Outcome: outcome,
	}
}
