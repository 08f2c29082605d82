// In file: internal/llm/gemini_client_test.go
package llm

import (
	"sync"
	"testing"

	"agent-ui-service/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeminiClient(t *testing.T) *GeminiClient {
	t.Helper()
	client, err := NewGeminiClient("test-key", "gemini-2.5-flash")
	require.NoError(t, err)
	return client
}

func testToolDefs() []tools.Tool {
	return []tools.Tool{tools.NewFunctionTool(
		"create_info_card",
		"Create an info card",
		tools.JSONSchema{Type: "object"},
	)}
}

func TestGeminiClient_ConfigureDoesNotMutateSharedModel(t *testing.T) {
	client := newTestGeminiClient(t)

	maxTokens := 64
	configured := client.configure(&GenerationConfig{MaxTokens: maxTokens}, testToolDefs())

	require.NotSame(t, client.model, configured)
	require.Len(t, configured.Tools, 1)
	require.NotNil(t, configured.MaxOutputTokens)
	assert.Equal(t, int32(maxTokens), *configured.MaxOutputTokens)

	// The shared model stays untouched: a later call without tools must
	// not see this request's settings, and vice versa.
	assert.Nil(t, client.model.Tools)
	assert.Nil(t, client.model.MaxOutputTokens)

	bare := client.configure(nil, nil)
	assert.Nil(t, bare.Tools)
	assert.Len(t, configured.Tools, 1, "earlier copy keeps its toolset")
}

func TestGeminiClient_ConcurrentConfigureIsolated(t *testing.T) {
	client := newTestGeminiClient(t)
	defs := testToolDefs()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		withTools := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			model := client.configure(nil, defsIf(withTools, defs))
			if withTools {
				assert.Len(t, model.Tools, 1)
			} else {
				assert.Nil(t, model.Tools)
			}
		}()
	}
	wg.Wait()

	assert.Nil(t, client.model.Tools)
}

func defsIf(cond bool, defs []tools.Tool) []tools.Tool {
	if cond {
		return defs
	}
	return nil
}
