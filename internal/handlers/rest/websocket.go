package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	apiv1alpha1 "github.com/KirkDiggler/hexpath/internal/api/v1alpha1"
	"github.com/KirkDiggler/hexpath/internal/errors"
)

const wsIdleTimeout = 2 * time.Minute

// handleWebSocket answers GET /api/ws. Every text frame is one
// FindPathRequest and gets exactly one reply frame.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin)
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()
	conn.SetReadLimit(maxBodyBytes)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))

		_, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.InfoContext(r.Context(), "websocket closed", "error", err)
			}
			return
		}

		reply := s.answerFrame(r, message)
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.WarnContext(r.Context(), "websocket write failed", "error", err)
			return
		}
	}
}

func (s *Server) answerFrame(r *http.Request, message []byte) any {
	var req apiv1alpha1.FindPathRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return toErrorBody(errors.InvalidArgument("malformed request frame"))
	}

	resp, err := s.findPath(r, &req)
	if err != nil {
		return toErrorBody(err)
	}
	return resp
}
