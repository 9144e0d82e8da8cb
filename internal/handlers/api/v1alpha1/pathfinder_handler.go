// Package v1alpha1 handles the pathfinder grpc service interface
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/hexpath/internal/api/v1alpha1"
	"github.com/KirkDiggler/hexpath/internal/entities"
	"github.com/KirkDiggler/hexpath/internal/errors"
	"github.com/KirkDiggler/hexpath/internal/orchestrators/pathfinding"
)

// PathfinderHandlerConfig holds dependencies for the pathfinder handler
type PathfinderHandlerConfig struct {
	PathfindingService pathfinding.Service
}

// Validate ensures all required dependencies are present
func (c *PathfinderHandlerConfig) Validate() error {
	if c == nil || c.PathfindingService == nil {
		return errors.InvalidArgument("pathfinding service is required")
	}
	return nil
}

// PathfinderHandler implements the pathfinder gRPC service
type PathfinderHandler struct {
	apiv1alpha1.UnimplementedPathfinderServiceServer
	pathfindingService pathfinding.Service
}

// NewPathfinderHandler creates a new pathfinder handler with the given configuration
func NewPathfinderHandler(cfg *PathfinderHandlerConfig) (*PathfinderHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PathfinderHandler{
		pathfindingService: cfg.PathfindingService,
	}, nil
}

// FindPath returns the shortest path between the source and target cells.
// Diagnostics such as "No path found" come back as a successful response.
func (h *PathfinderHandler) FindPath(
	ctx context.Context,
	req *apiv1alpha1.FindPathRequest,
) (*apiv1alpha1.FindPathResponse, error) {
	input, err := ToFindPathInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.pathfindingService.FindPath(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.FindPathResponse{
		Path: output.Path,
	}, nil
}

// ToFindPathInput validates a wire request and converts it for the
// orchestrator. An empty request type defaults to dijkstra.
func ToFindPathInput(req *apiv1alpha1.FindPathRequest) (*pathfinding.FindPathInput, error) {
	if req == nil {
		return nil, errors.InvalidArgument("request is required")
	}

	vb := errors.NewValidationBuilder()
	if req.GetSource() == nil {
		vb.RequiredField("source")
	}
	if req.GetTarget() == nil {
		vb.RequiredField("target")
	}
	if len(req.GetGrid()) == 0 {
		vb.RequiredField("grid")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	requestType := req.GetRequestType()
	if requestType == "" {
		requestType = pathfinding.RequestTypeDijkstra
	}

	return &pathfinding.FindPathInput{
		RequestType: requestType,
		Source:      toOffset(req.GetSource()),
		Target:      toOffset(req.GetTarget()),
		Grid:        req.GetGrid(),
	}, nil
}

func toOffset(o *apiv1alpha1.Offset) entities.Offset {
	return entities.Offset{Row: int(o.Row), Col: int(o.Col)}
}
