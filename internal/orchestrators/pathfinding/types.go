package pathfinding

import (
	"github.com/KirkDiggler/hexpath/internal/entities"
)

// Outcome classifies how a path request was answered
type Outcome string

const (
	OutcomePath               Outcome = "path"
	OutcomeNoPath             Outcome = "no_path"
	OutcomeInvalidGrid        Outcome = "invalid_grid"
	OutcomeInvalidRequestType Outcome = "invalid_request_type"
)

// FindPathInput defines the request for a path search
type FindPathInput struct {
	// RequestType selects the search algorithm; only "dijkstra" is supported
	RequestType string
	Source      entities.Offset
	Target      entities.Offset

	// Grid rows of single characters drawn from b, o, s and e
	Grid [][]string
}

// FindPathOutput defines the response for a path search
type FindPathOutput struct {
	// Path holds rendered cells target first, or a single diagnostic message
	Path    []string
	Outcome Outcome
}
