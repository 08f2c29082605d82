// In file: internal/tools/weather_card_tool.go
package tools

import "agent-ui-service/internal/schema"

const weatherCardToolName = "create_weather_card"

// WeatherCardTool builds a weather card component from model-provided
// arguments. Numeric fields arrive as free text ("20°C", "65%") and are
// coerced before construction.
type WeatherCardTool struct{}

var _ ComponentTool = (*WeatherCardTool)(nil)

func NewWeatherCardTool() *WeatherCardTool {
	return &WeatherCardTool{}
}

func (t *WeatherCardTool) Definition() Tool {
	return NewFunctionTool(
		weatherCardToolName,
		"Create a weather card component when the query and answer contain weather information. "+
			"Extract the location, temperature, and condition from the answer.",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"location": {
					Type:        "string",
					Description: "City or location name, e.g. 'Paris, France'",
				},
				"temperature": {
					Type:        "number",
					Description: "Current temperature in Celsius",
				},
				"condition": {
					Type:        "string",
					Description: "Weather condition like 'Sunny', 'Cloudy', 'Rainy'",
				},
				"humidity": {
					Type:        "integer",
					Description: "Humidity percentage",
				},
				"wind_speed": {
					Type:        "number",
					Description: "Wind speed in km/h",
				},
				"icon": {
					Type:        "string",
					Description: "Weather icon identifier like 'sunny', 'cloudy', 'rainy'",
				},
			},
			Required: []string{"location", "temperature", "condition"},
		},
	)
}

func (t *WeatherCardTool) Create(args map[string]any) (schema.Component, error) {
	location := stringArg(args, "location")
	if location == "" {
		return nil, &MissingParameterError{Tool: weatherCardToolName, Param: "location"}
	}
	condition := stringArg(args, "condition")
	if condition == "" {
		return nil, &MissingParameterError{Tool: weatherCardToolName, Param: "condition"}
	}
	if _, ok := args["temperature"]; !ok {
		return nil, &MissingParameterError{Tool: weatherCardToolName, Param: "temperature"}
	}

	card := schema.NewWeatherCard(
		location,
		schema.CoerceFloat(args["temperature"], schema.DefaultTemperature),
		condition,
	)
	card.Humidity = schema.CoerceOptionalInt(args["humidity"])
	card.WindSpeed = schema.CoerceOptionalFloat(args["wind_speed"])
	card.Icon = stringArg(args, "icon")
	return card, nil
}

func (t *WeatherCardTool) Execute(arguments string) (string, error) {
	return executeComponent(t, arguments)
}
