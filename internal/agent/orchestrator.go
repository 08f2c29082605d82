// In file: internal/agent/orchestrator.go
package agent

import (
	"context"
	"log"
	"time"

	"agent-ui-service/internal/schema"
)

// apologyAnswer is the user-facing answer text whenever the answer stage
// fails outright.
const apologyAnswer = "I apologize, but I encountered an error while processing your request."

const defaultRequestTimeout = 60 * time.Second

// Orchestrator runs the two-stage pipeline: answer generation followed by
// component selection. A failure in either stage is isolated so the caller
// always receives a complete, renderable response.
type Orchestrator struct {
	answer  *AnswerAgent
	ui      *UIAgent
	timeout time.Duration
}

func NewOrchestrator(answer *AnswerAgent, ui *UIAgent, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Orchestrator{answer: answer, ui: ui, timeout: timeout}
}

// Process executes both stages for a single query under the orchestrator's
// deadline. allowedTools optionally restricts which component tools the
// selection stage may use.
func (o *Orchestrator) Process(ctx context.Context, query, contextText string, allowedTools []string) *schema.AgentResponse {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	answer, err := o.answer.GenerateAnswer(ctx, query, contextText)
	if err != nil {
		log.Printf("❌ Answer generation failed: %v", err)
		return &schema.AgentResponse{
			Answer:    apologyAnswer,
			Component: fallbackInfoCard(apologyAnswer),
			Reasoning: "Answer generation failed; returning an apology with a default info card.",
		}
	}

	component, reasoning := o.ui.SelectComponent(ctx, query, answer, allowedTools)
	return &schema.AgentResponse{
		Answer:    answer,
		Component: component,
		Reasoning: reasoning,
	}
}
