// In file: internal/agent/orchestrator_test.go
package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"agent-ui-service/internal/schema"
	"agent-ui-service/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline(client *fakeClient) *Orchestrator {
	router := NewRouter(nil, client, "test-model")
	answerAgent := NewAnswerAgent(client, "test-model", tools.NewWeatherTool())
	uiAgent := NewUIAgent(client, "test-model", newRegistry(), router)
	return NewOrchestrator(answerAgent, uiAgent, time.Minute)
}

func TestOrchestrator_WeatherQuery(t *testing.T) {
	client := &fakeClient{steps: []fakeStep{
		// Answer stage: one weather lookup, then the final answer.
		toolStep("get_weather", `{"city":"Tokyo"}`),
		textStep("It is currently 22°C and sunny in Tokyo."),
		// Selection stage: weather routes by rule straight to the loop.
		toolStep("create_weather_card", `{"location":"Tokyo","temperature":"22°C","condition":"Sunny"}`),
	}}
	pipeline := newPipeline(client)

	resp := pipeline.Process(context.Background(), "What's the weather in Tokyo?", "", nil)
	require.NotNil(t, resp)
	assert.Contains(t, resp.Answer, "22°C")
	assert.Contains(t, resp.Answer, "sunny")

	card, ok := resp.Component.(*schema.WeatherCard)
	require.True(t, ok)
	assert.Equal(t, "Tokyo", card.Location)
	assert.Equal(t, 22.0, card.Temperature)
	assert.NotEmpty(t, resp.Reasoning)
}

func TestOrchestrator_ChartQuery(t *testing.T) {
	client := &fakeClient{steps: []fakeStep{
		textStep("Q1 sales were 100 units and Q2 sales were 150 units."),
		toolStep("create_chart_card",
			`{"title":"Quarterly Sales","chart_type":"bar","data":[{"label":"Q1","value":100},{"label":"Q2","value":150}]}`),
	}}
	pipeline := newPipeline(client)

	resp := pipeline.Process(context.Background(), "Show me a chart of quarterly sales", "", nil)
	card, ok := resp.Component.(*schema.ChartCard)
	require.True(t, ok)
	assert.Len(t, card.Data, 2)
}

func TestOrchestrator_AnswerFailureIsIsolated(t *testing.T) {
	client := &fakeClient{steps: []fakeStep{errStep(errors.New("provider down"))}}
	pipeline := newPipeline(client)

	resp := pipeline.Process(context.Background(), "What is Go?", "", nil)
	require.NotNil(t, resp)
	assert.Equal(t, apologyAnswer, resp.Answer)

	card, ok := resp.Component.(*schema.InfoCard)
	require.True(t, ok)
	assert.Equal(t, "Information", card.Title)
	assert.Equal(t, apologyAnswer, card.Content)
	assert.NotEmpty(t, resp.Reasoning)
}

func TestOrchestrator_SelectionFailureStillAnswers(t *testing.T) {
	client := &fakeClient{steps: []fakeStep{
		textStep("It is sunny in Tokyo."),
		errStep(errors.New("provider down")),
	}}
	pipeline := newPipeline(client)

	resp := pipeline.Process(context.Background(), "weather in Tokyo", "", nil)
	assert.Equal(t, "It is sunny in Tokyo.", resp.Answer)
	require.IsType(t, &schema.InfoCard{}, resp.Component)
}

func TestOrchestrator_DefaultTimeout(t *testing.T) {
	pipeline := NewOrchestrator(nil, nil, 0)
	assert.Equal(t, defaultRequestTimeout, pipeline.timeout)
}
