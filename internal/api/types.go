// In file: internal/api/types.go
// Package api defines the transport-level request and response types shared
// by the HTTP and WebSocket frontends.
package api

// SchemaDescriptor names a component kind the client is able to render.
type SchemaDescriptor struct {
	Name string `json:"name"`
}

// QueryRequest is the body of POST /api/query and of each WebSocket query
// message.
type QueryRequest struct {
	Query   string             `json:"query" binding:"required"`
	Context string             `json:"context,omitempty"`
	Schemas []SchemaDescriptor `json:"schemas,omitempty"`
}

// QueryResponse is the envelope returned for every query, successful or
// not. Component is the JSON form of one of the schema component structs.
type QueryResponse struct {
	Answer    string `json:"answer"`
	Component any    `json:"component"`
	Reasoning string `json:"reasoning"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// WebSocket event types.
const (
	EventConnected = "connected"
	EventStatus    = "status"
	EventResult    = "result"
	EventError     = "error"
)

// WSEvent is a single server-to-client WebSocket frame.
type WSEvent struct {
	Type      string         `json:"type"`
	Message   string         `json:"message,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Data      *QueryResponse `json:"data,omitempty"`
}
