// In file: internal/llm/client_test.go
package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsage_Add(t *testing.T) {
	var total Usage
	total.Add(Usage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120})
	total.Add(Usage{PromptTokens: 150, CompletionTokens: 30, TotalTokens: 180})

	assert.Equal(t, 250, total.PromptTokens)
	assert.Equal(t, 50, total.CompletionTokens)
	assert.Equal(t, 300, total.TotalTokens)

	// Adding a zero usage is a no-op.
	total.Add(Usage{})
	assert.Equal(t, 300, total.TotalTokens)
}
