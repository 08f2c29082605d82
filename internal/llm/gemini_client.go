// In file: internal/llm/gemini_client.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"agent-ui-service/internal/tools"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiClient is the client for Google's Gemini models. This is the
// default provider: the reference pipeline runs on gemini-2.5-flash.
// The embedded model is never written after construction; per-request
// settings go onto a copy so concurrent requests stay isolated.
type GeminiClient struct {
	model *genai.GenerativeModel
}

var _ LLMClient = (*GeminiClient)(nil)

func NewGeminiClient(apiKey, modelID string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel(modelID)}, nil
}

// Generate performs a blocking request to the Gemini API.
func (c *GeminiClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	if len(messages) == 0 {
		return nil, errors.New("gemini: empty conversation")
	}
	model := c.configure(config, availableTools)

	chat := model.StartChat()
	chat.History = toGeminiHistory(messages)

	last := messages[len(messages)-1]
	resp, err := chat.SendMessage(ctx, genai.Text(geminiMessageText(last)))
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return parseGeminiResponse(resp)
}

// GenerateStream performs a streaming request to the Gemini API.
func (c *GeminiClient) GenerateStream(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (<-chan *StreamingResult, error) {
	if len(messages) == 0 {
		return nil, errors.New("gemini: empty conversation")
	}
	model := c.configure(config, availableTools)

	chat := model.StartChat()
	chat.History = toGeminiHistory(messages)
	last := messages[len(messages)-1]

	outChan := make(chan *StreamingResult)
	go func() {
		defer close(outChan)
		iter := chat.SendMessageStream(ctx, genai.Text(geminiMessageText(last)))
		for {
			resp, err := iter.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				outChan <- &StreamingResult{Err: fmt.Errorf("gemini stream error: %w", err)}
				return
			}
			if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
				continue
			}
			var content strings.Builder
			for _, part := range resp.Candidates[0].Content.Parts {
				if txt, ok := part.(genai.Text); ok {
					content.WriteString(string(txt))
				}
			}
			outChan <- &StreamingResult{ContentDelta: content.String()}
		}
	}()
	return outChan, nil
}

// configure returns a request-local copy of the model carrying this call's
// generation settings and toolset. The shared model is read-only after
// construction, so overlapping requests cannot race on Tools or the
// generation parameters.
func (c *GeminiClient) configure(config *GenerationConfig, availableTools []tools.Tool) *genai.GenerativeModel {
	model := *c.model
	model.SetMaxOutputTokens(4096)
	if config != nil {
		if config.Temperature != nil {
			model.SetTemperature(*config.Temperature)
		}
		if config.TopP != nil {
			model.SetTopP(*config.TopP)
		}
		if config.MaxTokens > 0 {
			model.SetMaxOutputTokens(int32(config.MaxTokens))
		}
	}

	if len(availableTools) > 0 {
		model.Tools = toGeminiTools(availableTools)
	} else {
		model.Tools = nil
	}
	return &model
}

// geminiMessageText flattens a message into plain text. Gemini's chat API
// has no first-class tool-result role in this SDK surface, so tool results
// travel as prefixed text.
func geminiMessageText(msg Message) string {
	if msg.Role == RoleTool {
		return "Tool result: " + msg.Content
	}
	return msg.Content
}

func toGeminiHistory(messages []Message) []*genai.Content {
	var history []*genai.Content
	// The last message is the new prompt; everything before it is history.
	for _, msg := range messages[:len(messages)-1] {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(geminiMessageText(msg))},
		})
	}
	return history
}

func toGeminiTools(toolsToConvert []tools.Tool) []*genai.Tool {
	var geminiTools []*genai.Tool
	for _, t := range toolsToConvert {
		decl := &genai.FunctionDeclaration{
			Name:        t.Function.Name,
			Description: t.Function.Description,
			Parameters:  toGeminiSchema(t.Function.Parameters),
		}
		geminiTools = append(geminiTools, &genai.Tool{
			FunctionDeclarations: []*genai.FunctionDeclaration{decl},
		})
	}
	return geminiTools
}

func toGeminiSchema(s tools.JSONSchema) *genai.Schema {
	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
	}
	switch s.Type {
	case "object":
		out.Type = genai.TypeObject
	case "string":
		out.Type = genai.TypeString
	case "number":
		out.Type = genai.TypeNumber
	case "integer":
		out.Type = genai.TypeInteger
	case "boolean":
		out.Type = genai.TypeBoolean
	case "array":
		out.Type = genai.TypeArray
	}
	if s.Items != nil {
		out.Items = toGeminiSchema(*s.Items)
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = toGeminiSchema(*v)
		}
	}
	return out
}

func parseGeminiResponse(resp *genai.GenerateContentResponse) (*GenerationResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("no content returned from Gemini")
	}

	var content strings.Builder
	var toolCalls []*tools.ToolCall

	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			content.WriteString(string(v))
		case genai.FunctionCall:
			argsJSON, err := json.Marshal(v.Args)
			if err != nil {
				log.Printf("WARNING: could not marshal tool call args for %s: %v", v.Name, err)
				continue
			}
			toolCalls = append(toolCalls, &tools.ToolCall{
				ID:   "gemini-" + uuid.NewString(),
				Type: tools.ToolTypeFunction,
				Function: tools.ToolCallFunction{
					Name:      v.Name,
					Arguments: string(argsJSON),
				},
			})
		}
	}

	result := &GenerationResult{
		Content:   strings.TrimSpace(content.String()),
		ToolCalls: toolCalls,
	}
	if resp.UsageMetadata != nil {
		result.Usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.Usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		result.Usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return result, nil
}
