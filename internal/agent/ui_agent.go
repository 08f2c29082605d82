// In file: internal/agent/ui_agent.go
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agent-ui-service/internal/llm"
	"agent-ui-service/internal/schema"
	"agent-ui-service/internal/tools"
)

const selectionSystemPrompt = `You are a UI Component Agent. Your job is to select the most appropriate UI component for the given query and answer.

Analyze the query and answer, then use the most appropriate tool to create the UI component.
If the content is about weather, use create_weather_card.
If the content can be visualized as data, use create_chart_card.
If the content is structured/tabular, use create_data_table.
For general information, use create_info_card.
Extract specific values (numbers, dates, lists) from the answer text and make reasonable
assumptions for missing optional parameters. Always call exactly one tool.`

const reasoningPromptTemplate = `Based on this query and answer, provide a brief reasoning for why this response is appropriate:

Query: %s
Answer: %s

Reasoning:`

// fallbackTitle is the title of every degraded info card.
const fallbackTitle = "Information"

// maxSelectionIterations bounds the selection tool loop. Three model round
// trips is enough to recover from a bad tool call or two while keeping
// latency and cost bounded; after that the stage degrades to the info-card
// fallback.
const maxSelectionIterations = 3

// categoryToolNames maps each routing category to the component tools
// allowed to serve it.
var categoryToolNames = map[Category][]string{
	CategoryDataDisplay:       {"create_weather_card", "create_data_table"},
	CategoryDataVisualization: {"create_chart_card"},
	CategoryContent:           {"create_info_card"},
	CategoryGeneral:           {"create_info_card"},
}

// UIAgent is the selection stage: it routes a query/answer pair to a
// component category, runs the bounded tool-calling loop to populate a
// component of that category, and degrades to an info card whenever
// anything goes wrong.
type UIAgent struct {
	client   llm.LLMClient
	model    string
	registry *tools.ToolManager
	router   *Router
}

func NewUIAgent(client llm.LLMClient, model string, registry *tools.ToolManager, router *Router) *UIAgent {
	return &UIAgent{client: client, model: model, registry: registry, router: router}
}

// SelectComponent picks and populates the component for a query/answer
// pair. allowedTools optionally restricts which component tools may be
// used (empty means all). It never fails: every error path produces the
// info-card fallback with a reasoning string explaining why.
func (u *UIAgent) SelectComponent(ctx context.Context, query, answer string, allowedTools []string) (schema.Component, string) {
	category := u.router.Route(ctx, query, answer)

	names := filterToolNames(categoryToolNames[category], allowedTools)
	if len(names) == 0 {
		return fallbackInfoCard(answer), fmt.Sprintf(
			"No requested component kind fits the '%s' category; showing the answer as an info card.", category)
	}

	// Content-style categories need no extraction: the info card's fields
	// are the answer itself, so skip the model round trip.
	if len(names) == 1 && names[0] == "create_info_card" {
		return fallbackInfoCard(answer), u.describeSelection(ctx, query, answer, RoutingExplanation(category))
	}

	component, err := u.runToolLoop(ctx, query, answer, names)
	if err != nil {
		log.Printf("Component selection failed, degrading to info card: %v", err)
		return fallbackInfoCard(answer), fmt.Sprintf(
			"Component selection fell back to an info card: %v.", err)
	}
	return component, fmt.Sprintf("Selected %s component based on query content", component.Kind())
}

// runToolLoop alternates between model invocation and tool execution until
// the model stops requesting tools, a tool yields a decodable component,
// or the iteration cap is hit.
func (u *UIAgent) runToolLoop(ctx context.Context, query, answer string, names []string) (schema.Component, error) {
	defs := u.registry.DefinitionsFor(names)
	messages := []llm.Message{{
		Role: llm.RoleUser,
		Content: fmt.Sprintf(
			"System: %s\n\nUser Query: %s\nGenerated Answer: %s\n\nPlease select and create the appropriate UI component.",
			selectionSystemPrompt, query, answer),
	}}

	var lastErr error
	var usage llm.Usage
	for i := 0; i < maxSelectionIterations; i++ {
		result, err := u.client.Generate(ctx, messages, &llm.GenerationConfig{Model: u.model}, defs)
		if err != nil {
			return nil, &TransportError{Op: "select", Err: err}
		}
		usage.Add(result.Usage)

		if len(result.ToolCalls) == 0 {
			// The model answered in prose instead of calling a tool; there
			// is no component to extract.
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, ErrUnparseableModelOutput
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   result.Content,
			ToolCalls: result.ToolCalls,
		})
		for _, call := range result.ToolCalls {
			log.Printf("🛠️ Executing tool: %s with args: %s", call.Function.Name, call.Function.Arguments)
			output, err := u.registry.Execute(call.Function.Name, call.Function.Arguments)
			if err != nil {
				lastErr = &ToolExecutionError{Tool: call.Function.Name, Err: err}
				messages = append(messages, llm.Message{
					Role:       llm.RoleTool,
					ToolCallID: call.ID,
					Content:    fmt.Sprintf("Error: %v", err),
				})
				continue
			}

			component, decodeErr := schema.DecodeComponent([]byte(output))
			if decodeErr != nil {
				lastErr = fmt.Errorf("%w: %v", ErrUnparseableModelOutput, decodeErr)
				messages = append(messages, llm.Message{
					Role:       llm.RoleTool,
					ToolCallID: call.ID,
					Content:    fmt.Sprintf("Error: %v", decodeErr),
				})
				continue
			}
			log.Printf("📊 Selection stage used %d tokens over %d model calls", usage.TotalTokens, i+1)
			return component, nil
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("component selection exceeded %d model round trips", maxSelectionIterations)
}

// describeSelection asks the model for a brief reasoning string, falling
// back to the static explanation when the call fails or returns nothing.
func (u *UIAgent) describeSelection(ctx context.Context, query, answer, fallbackReason string) string {
	result, err := u.client.Generate(ctx,
		[]llm.Message{{Role: llm.RoleUser, Content: fmt.Sprintf(reasoningPromptTemplate, query, answer)}},
		&llm.GenerationConfig{Model: u.model, MaxTokens: 128},
		nil,
	)
	if err != nil || strings.TrimSpace(result.Content) == "" {
		return fallbackReason
	}
	return strings.TrimSpace(result.Content)
}

// fallbackInfoCard is the universal safety net: a renderable default-styled
// info card carrying the best available answer text.
func fallbackInfoCard(answer string) schema.Component {
	return schema.NewInfoCard(fallbackTitle, answer)
}

// filterToolNames intersects the category's toolset with the caller's
// allow-list, preserving category order. An empty allow-list means no
// restriction.
func filterToolNames(base, allowed []string) []string {
	if len(allowed) == 0 {
		return base
	}
	allowedSet := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = true
	}
	var out []string
	for _, name := range base {
		if allowedSet[name] {
			out = append(out, name)
		}
	}
	return out
}
