// In file: internal/tools/info_card_tool.go
package tools

import "agent-ui-service/internal/schema"

const infoCardToolName = "create_info_card"

// InfoCardTool builds the general-purpose information card. It serves both
// as the content-category component and as the terminal fallback when no
// other component fits.
type InfoCardTool struct{}

var _ ComponentTool = (*InfoCardTool)(nil)

func NewInfoCardTool() *InfoCardTool {
	return &InfoCardTool{}
}

func (t *InfoCardTool) Definition() Tool {
	return NewFunctionTool(
		infoCardToolName,
		"Create an info card component for general information, explanations, or when no "+
			"specific component fits the content.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"title": {
					Type:        "string",
					Description: "Card title",
				},
				"content": {
					Type:        "string",
					Description: "Main content or description",
				},
				"icon": {
					Type:        "string",
					Description: "Optional icon name like 'info', 'lightbulb', 'help'",
				},
				"variant": {
					Type:        "string",
					Description: "Card style",
					Enum:        []string{"default", "success", "warning", "error"},
				},
			},
			Required: []string{"title", "content"},
		},
	)
}

func (t *InfoCardTool) Create(args map[string]any) (schema.Component, error) {
	title := stringArg(args, "title")
	if title == "" {
		return nil, &MissingParameterError{Tool: infoCardToolName, Param: "title"}
	}
	content := stringArg(args, "content")
	if content == "" {
		return nil, &MissingParameterError{Tool: infoCardToolName, Param: "content"}
	}

	card := schema.NewInfoCard(title, content)
	card.Icon = stringArg(args, "icon")
	card.Variant = schema.ParseVariant(stringArg(args, "variant"))
	return card, nil
}

func (t *InfoCardTool) Execute(arguments string) (string, error) {
	return executeComponent(t, arguments)
}
