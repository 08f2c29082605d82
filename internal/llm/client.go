// In file: internal/llm/client.go

// Package llm defines the model-oracle contract: a conversation of
// role-tagged messages goes in, and either final text or a structured
// tool-call request comes back. Provider clients (Gemini, OpenAI) adapt
// their wire formats to these types.
package llm

import (
	"context"

	"agent-ui-service/internal/tools"
)

// Role identifies the originator of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single entry in a conversation history. Tool results carry
// the ToolCallID of the request they answer; assistant messages carry the
// tool calls they made.
type Message struct {
	Role       Role              `json:"role"`
	Content    string            `json:"content"`
	ToolCallID string            `json:"tool_call_id,omitempty"`
	ToolCalls  []*tools.ToolCall `json:"tool_calls,omitempty"`
}

// GenerationConfig controls a single generation request. Pointer fields
// distinguish "unset" from zero values.
type GenerationConfig struct {
	Model       string
	Temperature *float32
	MaxTokens   int
	TopP        *float32
	Stream      bool
}

// Usage holds token accounting for a generation request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another request's usage, e.g. across a tool loop.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// GenerationResult is the complete output of a blocking model call: final
// text, any tool calls the model requested, and token usage.
type GenerationResult struct {
	Content   string
	ToolCalls []*tools.ToolCall
	Usage     Usage
}

// StreamingResult is one chunk of a streamed response.
type StreamingResult struct {
	ContentDelta  string
	ToolCallChunk *tools.ToolCall
	Usage         *Usage
	Err           error
}

// LLMClient is the interface every model provider implements. Both calling
// conventions are required: Generate blocks until the full result is
// available, GenerateStream delivers chunks over a channel.
type LLMClient interface {
	Generate(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (*GenerationResult, error)

	GenerateStream(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (<-chan *StreamingResult, error)
}
