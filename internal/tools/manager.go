// In file: internal/tools/manager.go
package tools

import "fmt"

// ToolManager holds the registry of available tools. It is populated once
// at startup and read-only afterwards.
type ToolManager struct {
	tools map[string]ToolExecutor
	order []string
}

func NewToolManager() *ToolManager {
	return &ToolManager{
		tools: make(map[string]ToolExecutor),
	}
}

// Register adds a tool under its declared function name.
func (tm *ToolManager) Register(tool ToolExecutor) {
	name := tool.Definition().Function.Name
	if _, exists := tm.tools[name]; !exists {
		tm.order = append(tm.order, name)
	}
	tm.tools[name] = tool
}

// Get returns the tool registered under name.
func (tm *ToolManager) Get(name string) (ToolExecutor, bool) {
	tool, ok := tm.tools[name]
	return tool, ok
}

// GetDefinitions returns every registered tool definition in registration
// order.
func (tm *ToolManager) GetDefinitions() []Tool {
	defs := make([]Tool, 0, len(tm.tools))
	for _, name := range tm.order {
		defs = append(defs, tm.tools[name].Definition())
	}
	return defs
}

// DefinitionsFor returns the definitions for the named tools, preserving
// the given order and skipping names that are not registered.
func (tm *ToolManager) DefinitionsFor(names []string) []Tool {
	defs := make([]Tool, 0, len(names))
	for _, name := range names {
		if tool, ok := tm.tools[name]; ok {
			defs = append(defs, tool.Definition())
		}
	}
	return defs
}

// Execute runs a tool by name with the given JSON arguments.
func (tm *ToolManager) Execute(name, arguments string) (string, error) {
	tool, ok := tm.tools[name]
	if !ok {
		return "", fmt.Errorf("tool '%s' not found", name)
	}
	return tool.Execute(arguments)
}

// ToolCount returns the number of registered tools.
func (tm *ToolManager) ToolCount() int {
	return len(tm.tools)
}
