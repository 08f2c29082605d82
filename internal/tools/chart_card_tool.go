// In file: internal/tools/chart_card_tool.go
package tools

import "agent-ui-service/internal/schema"

const chartCardToolName = "create_chart_card"

// ChartCardTool builds a chart component for data visualization queries.
type ChartCardTool struct{}

var _ ComponentTool = (*ChartCardTool)(nil)

func NewChartCardTool() *ChartCardTool {
	return &ChartCardTool{}
}

func (t *ChartCardTool) Definition() Tool {
	return NewFunctionTool(
		chartCardToolName,
		"Create a chart component when the query asks for charts, graphs, or data visualization. "+
			"Extract the numeric series from the answer as labeled data points.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"title": {
					Type:        "string",
					Description: "Chart title",
				},
				"chart_type": {
					Type:        "string",
					Description: "Type of chart to render",
					Enum:        []string{"bar", "line", "pie", "area"},
				},
				"data": {
					Type:        "array",
					Description: "Chart data points",
					Items: &JSONSchema{
						Type: "object",
						Properties: map[string]*JSONSchema{
							"label": {Type: "string", Description: "Data point label"},
							"value": {Type: "number", Description: "Data point value"},
							"color": {Type: "string", Description: "Optional color for this data point"},
						},
						Required: []string{"label", "value"},
					},
				},
				"x_axis_label": {Type: "string", Description: "X-axis label"},
				"y_axis_label": {Type: "string", Description: "Y-axis label"},
			},
			Required: []string{"title", "chart_type", "data"},
		},
	)
}

func (t *ChartCardTool) Create(args map[string]any) (schema.Component, error) {
	title := stringArg(args, "title")
	if title == "" {
		return nil, &MissingParameterError{Tool: chartCardToolName, Param: "title"}
	}
	chartType := stringArg(args, "chart_type")
	if chartType == "" {
		return nil, &MissingParameterError{Tool: chartCardToolName, Param: "chart_type"}
	}

	rawPoints, _ := args["data"].([]any)
	if len(rawPoints) == 0 {
		return nil, &MissingParameterError{Tool: chartCardToolName, Param: "data"}
	}

	points := make([]schema.ChartDataPoint, 0, len(rawPoints))
	for _, raw := range rawPoints {
		point, _ := raw.(map[string]any)
		label := stringArg(point, "label")
		if label == "" {
			return nil, &MissingParameterError{Tool: chartCardToolName, Param: "data.label"}
		}
		points = append(points, schema.ChartDataPoint{
			Label: label,
			Value: schema.CoerceFloat(point["value"], 0),
			Color: stringArg(point, "color"),
		})
	}

	card := schema.NewChartCard(title, schema.ParseChartType(chartType), points)
	card.XAxisLabel = stringArg(args, "x_axis_label")
	card.YAxisLabel = stringArg(args, "y_axis_label")
	return card, nil
}

func (t *ChartCardTool) Execute(arguments string) (string, error) {
	return executeComponent(t, arguments)
}
