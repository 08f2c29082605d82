// In file: internal/agent/answer_agent.go
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agent-ui-service/internal/llm"
	"agent-ui-service/internal/tools"
)

const weatherSystemPrompt = `You are a helpful assistant that can get weather information for any city.

When a user asks about weather, use the get_weather tool to get current weather data.
After getting weather information, provide a comprehensive and friendly response.`

const answerPromptTemplate = `You are a helpful assistant that provides clear, informative answers to user questions.

User Query: %s
Context: %s

Please provide a comprehensive answer to the user's question. Be factual, helpful, and concise.
If the query is about weather, include relevant details like temperature, conditions, etc.
If the query is about data analysis, explain trends and insights.
If the query is general information, provide accurate and useful details.

Answer:`

var weatherIndicators = []string{"weather", "temperature", "forecast", "climate", "rain", "snow", "sunny", "cloudy"}

// maxWeatherToolCalls bounds the answer stage's tool loop so a model that
// keeps requesting lookups cannot spin indefinitely.
const maxWeatherToolCalls = 5

// AnswerAgent produces the textual answer for a query. Weather queries go
// through a tool-calling loop against the weather data source; everything
// else, and every failure, falls back to a direct completion.
type AnswerAgent struct {
	client      llm.LLMClient
	model       string
	weatherTool tools.ToolExecutor
}

func NewAnswerAgent(client llm.LLMClient, model string, weatherTool tools.ToolExecutor) *AnswerAgent {
	return &AnswerAgent{client: client, model: model, weatherTool: weatherTool}
}

func (a *AnswerAgent) needsWeather(query string) bool {
	return containsAny(strings.ToLower(query), weatherIndicators)
}

// GenerateAnswer returns the answer text for a query. An error is returned
// only when the direct-completion fallback itself fails; the caller decides
// how to degrade from there.
func (a *AnswerAgent) GenerateAnswer(ctx context.Context, query, contextText string) (string, error) {
	if a.needsWeather(query) {
		answer, err := a.runWeatherLoop(ctx, query)
		if err == nil && answer != "" {
			return answer, nil
		}
		if err != nil {
			log.Printf("Weather tool loop failed, falling back to direct completion: %v", err)
		}
	}
	return a.directCompletion(ctx, query, contextText)
}

func (a *AnswerAgent) runWeatherLoop(ctx context.Context, query string) (string, error) {
	weatherDef := a.weatherTool.Definition()
	defs := []tools.Tool{weatherDef}
	messages := []llm.Message{{
		Role:    llm.RoleUser,
		Content: fmt.Sprintf("System: %s\n\nUser Query: %s", weatherSystemPrompt, query),
	}}

	var usage llm.Usage
	for i := 0; i < maxWeatherToolCalls; i++ {
		result, err := a.client.Generate(ctx, messages, &llm.GenerationConfig{Model: a.model}, defs)
		if err != nil {
			return "", &TransportError{Op: "answer", Err: err}
		}
		usage.Add(result.Usage)
		if len(result.ToolCalls) == 0 {
			log.Printf("📊 Answer stage used %d tokens over %d model calls", usage.TotalTokens, i+1)
			return strings.TrimSpace(result.Content), nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   result.Content,
			ToolCalls: result.ToolCalls,
		})
		for _, call := range result.ToolCalls {
			log.Printf("🛠️ Executing tool: %s with args: %s", call.Function.Name, call.Function.Arguments)
			var output string
			if call.Function.Name != weatherDef.Function.Name {
				output = fmt.Sprintf("Error: unknown tool %s", call.Function.Name)
			} else if out, err := a.weatherTool.Execute(call.Function.Arguments); err != nil {
				output = fmt.Sprintf("Error executing tool %s: %v", call.Function.Name, err)
			} else {
				output = out
			}
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    output,
			})
		}
	}
	return "", fmt.Errorf("weather loop exceeded %d tool calls", maxWeatherToolCalls)
}

func (a *AnswerAgent) directCompletion(ctx context.Context, query, contextText string) (string, error) {
	prompt := fmt.Sprintf(answerPromptTemplate, query, contextText)
	result, err := a.client.Generate(ctx,
		[]llm.Message{{Role: llm.RoleUser, Content: prompt}},
		&llm.GenerationConfig{Model: a.model},
		nil,
	)
	if err != nil {
		return "", &TransportError{Op: "answer", Err: err}
	}
	return strings.TrimSpace(result.Content), nil
}
