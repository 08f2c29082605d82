// In file: internal/agent/fake_client_test.go
package agent

import (
	"context"
	"errors"
	"fmt"

	"agent-ui-service/internal/llm"
	"agent-ui-service/internal/tools"
)

// fakeStep scripts one Generate call: either a result or an error.
type fakeStep struct {
	result *llm.GenerationResult
	err    error
}

// fakeClient replays a scripted sequence of generation results. When the
// script runs out, the last step repeats, so loop-termination tests can
// model a client that keeps requesting tools forever.
type fakeClient struct {
	steps []fakeStep
	calls [][]llm.Message
}

func textStep(content string) fakeStep {
	return fakeStep{result: &llm.GenerationResult{Content: content}}
}

func toolStep(name, arguments string) fakeStep {
	return fakeStep{result: &llm.GenerationResult{
		ToolCalls: []*tools.ToolCall{{
			ID:   fmt.Sprintf("call-%s", name),
			Type: tools.ToolTypeFunction,
			Function: tools.ToolCallFunction{
				Name:      name,
				Arguments: arguments,
			},
		}},
	}}
}

func errStep(err error) fakeStep {
	return fakeStep{err: err}
}

func (f *fakeClient) Generate(
	_ context.Context,
	messages []llm.Message,
	_ *llm.GenerationConfig,
	_ []tools.Tool,
) (*llm.GenerationResult, error) {
	f.calls = append(f.calls, messages)
	if len(f.steps) == 0 {
		return nil, errors.New("fake client has no scripted steps")
	}
	i := len(f.calls) - 1
	if i >= len(f.steps) {
		i = len(f.steps) - 1
	}
	step := f.steps[i]
	return step.result, step.err
}

func (f *fakeClient) GenerateStream(
	context.Context, []llm.Message, *llm.GenerationConfig, []tools.Tool,
) (<-chan *llm.StreamingResult, error) {
	return nil, errors.New("streaming not supported by fake client")
}

func newRegistry() *tools.ToolManager {
	registry := tools.NewToolManager()
	registry.Register(tools.NewWeatherCardTool())
	registry.Register(tools.NewChartCardTool())
	registry.Register(tools.NewDataTableTool())
	registry.Register(tools.NewInfoCardTool())
	return registry
}
