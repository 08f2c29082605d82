// In file: internal/tools/executor.go
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"agent-ui-service/internal/schema"
)

// ToolExecutor is the contract every tool in the system implements. The
// agent loops manage tools through this interface without knowing their
// concrete types.
type ToolExecutor interface {
	// Definition returns the schema shown to the model.
	Definition() Tool

	// Execute runs the tool against a JSON arguments string, as generated
	// by the model, and returns a string result for the conversation.
	Execute(arguments string) (string, error)
}

// ComponentTool is a ToolExecutor whose result is a UI component. Create is
// the direct-call form: it validates and coerces a decoded argument map
// into a component without any JSON round trip.
type ComponentTool interface {
	ToolExecutor

	Create(args map[string]any) (schema.Component, error)
}

// executeComponent adapts a ComponentTool's Create to the ToolExecutor
// contract: decode the argument JSON, build the component, serialize it.
func executeComponent(t ComponentTool, arguments string) (string, error) {
	name := t.Definition().Function.Name

	args := make(map[string]any)
	if strings.TrimSpace(arguments) != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
		}
	}

	component, err := t.Create(args)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(component)
	if err != nil {
		return "", fmt.Errorf("failed to serialize %s result: %w", name, err)
	}
	return string(out), nil
}

// stringArg extracts a trimmed string argument, returning "" when the key
// is absent or not a string.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

// boolArg extracts a bool argument with a default for absent values.
func boolArg(args map[string]any, key string, fallback bool) bool {
	if b, ok := args[key].(bool); ok {
		return b
	}
	return fallback
}
