// Package engine runs shortest-path searches over hex grids
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/hexpath/internal/engine Engine

import (
	"context"
)

// Engine finds routes across a hex grid
type Engine interface {
	// FindPath returns the shortest path from source to target, target first.
	// It returns ErrNoPathFound when the target cannot be reached.
	FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error)
}
