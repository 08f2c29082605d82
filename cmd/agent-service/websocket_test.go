// In file: cmd/agent-service/websocket_test.go
package main

import (
	"net/http/httptest"
	"strings"
	"testing"

	"agent-ui-service/internal/api"
	"agent-ui-service/internal/schema"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestServer(t *testing.T, handler *WSHandler, path string) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) api.WSEvent {
	t.Helper()
	var event api.WSEvent
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestWSHandler_QueryFlow(t *testing.T) {
	pipeline := &fakePipeline{response: &schema.AgentResponse{
		Answer:    "It is sunny in Tokyo.",
		Component: schema.NewWeatherCard("Tokyo", 22, "Sunny"),
		Reasoning: "Weather query",
	}}
	conn := dialTestServer(t, NewWSHandler(pipeline, nil), "/ws/query")

	hello := readEvent(t, conn)
	assert.Equal(t, api.EventConnected, hello.Type)
	assert.NotEmpty(t, hello.SessionID)

	require.NoError(t, conn.WriteJSON(api.QueryRequest{Query: "weather in Tokyo"}))

	status := readEvent(t, conn)
	assert.Equal(t, api.EventStatus, status.Type)
	assert.Equal(t, "Processing query...", status.Message)

	result := readEvent(t, conn)
	assert.Equal(t, api.EventResult, result.Type)
	require.NotNil(t, result.Data)
	assert.True(t, result.Data.Success)
	assert.Equal(t, "It is sunny in Tokyo.", result.Data.Answer)

	component, ok := result.Data.Component.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "weather_card", component["type"])
}

func TestWSHandler_SessionIDFromQuery(t *testing.T) {
	pipeline := &fakePipeline{}
	conn := dialTestServer(t, NewWSHandler(pipeline, nil), "/ws/query?session_id=abc-123")

	hello := readEvent(t, conn)
	assert.Equal(t, "abc-123", hello.SessionID)
}

func TestWSHandler_InvalidMessage(t *testing.T) {
	pipeline := &fakePipeline{}
	conn := dialTestServer(t, NewWSHandler(pipeline, nil), "/ws/query")
	readEvent(t, conn) // connected

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	event := readEvent(t, conn)
	assert.Equal(t, api.EventError, event.Type)

	require.NoError(t, conn.WriteJSON(api.QueryRequest{Query: ""}))
	event = readEvent(t, conn)
	assert.Equal(t, api.EventError, event.Type)
}

func TestWSHandler_PanicYieldsErrorEnvelope(t *testing.T) {
	pipeline := &fakePipeline{panicMsg: "boom"}
	conn := dialTestServer(t, NewWSHandler(pipeline, nil), "/ws/query")
	readEvent(t, conn) // connected

	require.NoError(t, conn.WriteJSON(api.QueryRequest{Query: "weather"}))
	readEvent(t, conn) // status

	result := readEvent(t, conn)
	require.Equal(t, api.EventResult, result.Type)
	require.NotNil(t, result.Data)
	assert.False(t, result.Data.Success)
	assert.Contains(t, result.Data.Error, "boom")
}

func TestWSHandler_OriginCheck(t *testing.T) {
	handler := NewWSHandler(&fakePipeline{}, []string{"http://localhost:3000"})

	assert.True(t, handler.checkOrigin(httptest.NewRequest("GET", "/ws/query", nil)),
		"requests without an Origin header are allowed")

	allowed := httptest.NewRequest("GET", "/ws/query", nil)
	allowed.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, handler.checkOrigin(allowed))

	denied := httptest.NewRequest("GET", "/ws/query", nil)
	denied.Header.Set("Origin", "http://evil.example")
	assert.False(t, handler.checkOrigin(denied))
}
