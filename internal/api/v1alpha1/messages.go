// Package v1alpha1 defines the wire messages and gRPC service for path requests.
//
// Messages are plain structs carried as JSON. The service is registered with
// a JSON codec under the "json" content-subtype, so clients must call with
// grpc.CallContentSubtype(CodecName); NewPathfinderServiceClient does this.
package v1alpha1

// Offset is a row/column position in the odd-r layout
type Offset struct {
	Row int32 `json:"row"`
	Col int32 `json:"col"`
}

// FindPathRequest asks for the shortest path between two cells
type FindPathRequest struct {
	RequestType string     `json:"request_type,omitempty"`
	Source      *Offset    `json:"source"`
	Target      *Offset    `json:"target"`
	Grid        [][]string `json:"grid"`
}

// GetRequestType returns the request type or empty when req is nil
func (req *FindPathRequest) GetRequestType() string {
	if req == nil {
		return ""
	}
	return req.RequestType
}

// GetSource returns the source offset or nil
func (req *FindPathRequest) GetSource() *Offset {
	if req == nil {
		return nil
	}
	return req.Source
}

// GetTarget returns the target offset or nil
func (req *FindPathRequest) GetTarget() *Offset {
	if req == nil {
		return nil
	}
	return req.Target
}

// GetGrid returns the grid rows or nil
func (req *FindPathRequest) GetGrid() [][]string {
	if req == nil {
		return nil
	}
	return req.Grid
}

// FindPathResponse holds the rendered path, target first, or a single
// diagnostic message
type FindPathResponse struct {
	Path []string `json:"path"`
}

// GetPath returns the path or nil
func (resp *FindPathResponse) GetPath() []string {
	if resp == nil {
		return nil
	}
	return resp.Path
}
