package rest

import (
	"encoding/json"
	"net/http"

	apiv1alpha1 "github.com/KirkDiggler/hexpath/internal/api/v1alpha1"
	"github.com/KirkDiggler/hexpath/internal/errors"
	grpchandler "github.com/KirkDiggler/hexpath/internal/handlers/api/v1alpha1"
)

// maxBodyBytes bounds request bodies and websocket frames
const maxBodyBytes = 1 << 20

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello, World at root!"))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleFindPath answers POST /api/{requestType}. The request type in the
// path wins over any request_type in the body.
func (s *Server) handleFindPath(w http.ResponseWriter, r *http.Request) {
	var req apiv1alpha1.FindPathRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request body"))
		return
	}
	req.RequestType = r.PathValue("requestType")

	resp, err := s.findPath(r, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) findPath(r *http.Request, req *apiv1alpha1.FindPathRequest) (*apiv1alpha1.FindPathResponse, error) {
	input, err := grpchandler.ToFindPathInput(req)
	if err != nil {
		return nil, err
	}

	output, err := s.service.FindPath(r.Context(), input)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "path request failed", "error", err)
		return nil, err
	}

	return &apiv1alpha1.FindPathResponse{Path: output.Path}, nil
}
