// In file: cmd/agent-service/websocket.go
package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"agent-ui-service/internal/api"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // overridden at handler level
	},
}

// WSHandler serves the streaming query endpoint. Each connection is a
// session: the client sends query requests as JSON frames and receives a
// status event while the pipeline runs, then the result envelope.
type WSHandler struct {
	pipeline       QueryProcessor
	allowedOrigins map[string]bool
}

func NewWSHandler(pipeline QueryProcessor, allowedOrigins []string) *WSHandler {
	origins := make(map[string]bool)
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &WSHandler{pipeline: pipeline, allowedOrigins: origins}
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // allow non-browser clients
	}
	return h.allowedOrigins[origin]
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader.CheckOrigin = h.checkOrigin

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if err := conn.WriteJSON(api.WSEvent{Type: api.EventConnected, SessionID: sessionID}); err != nil {
		log.Printf("Failed to send connected message: %v", err)
		return
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket closed unexpectedly: %v", err)
			}
			return
		}

		var req api.QueryRequest
		if err := json.Unmarshal(message, &req); err != nil {
			conn.WriteJSON(api.WSEvent{
				Type:    api.EventError,
				Message: "Invalid message format. Send JSON with a 'query' field.",
			})
			continue
		}
		if req.Query == "" {
			conn.WriteJSON(api.WSEvent{
				Type:    api.EventError,
				Message: "Query must not be empty.",
			})
			continue
		}

		if err := conn.WriteJSON(api.WSEvent{Type: api.EventStatus, Message: "Processing query..."}); err != nil {
			log.Printf("Failed to write to WebSocket: %v", err)
			return
		}

		resp := processQuery(r.Context(), h.pipeline, &req)
		if err := conn.WriteJSON(api.WSEvent{Type: api.EventResult, Data: resp}); err != nil {
			log.Printf("Failed to write to WebSocket: %v", err)
			return
		}
	}
}
