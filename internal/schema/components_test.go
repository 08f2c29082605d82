// In file: internal/schema/components_test.go
package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeComponent(t *testing.T) {
	humidity := 65
	wind := 12.0
	weather := NewWeatherCard("Tokyo", 22.5, "Sunny")
	weather.Humidity = &humidity
	weather.WindSpeed = &wind
	weather.Icon = "sunny"

	tests := []struct {
		name      string
		component Component
	}{
		{"weather card", weather},
		{
			"chart card",
			NewChartCard("Quarterly Sales", ChartLine, []ChartDataPoint{
				{Label: "Q1", Value: 120},
				{Label: "Q2", Value: 180.5, Color: "#ff0000"},
			}),
		},
		{
			"data table",
			NewDataTable("Users",
				[]TableColumn{{Key: "name", Label: "Name", Sortable: true}},
				[]TableRow{{Data: map[string]any{"name": "Ada"}}},
			),
		},
		{"info card", NewInfoCard("Information", "Some content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(tt.component)
			require.NoError(t, err)

			decoded, err := DecodeComponent(payload)
			require.NoError(t, err)
			assert.Equal(t, tt.component.Kind(), decoded.Kind())
			assert.Equal(t, tt.component, decoded)
		})
	}
}

func TestDecodeComponent_Errors(t *testing.T) {
	_, err := DecodeComponent([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeComponent([]byte(`{"type":"hologram"}`))
	assert.ErrorContains(t, err, "unknown component type")
}

func TestParseChartType(t *testing.T) {
	assert.Equal(t, ChartLine, ParseChartType("line"))
	assert.Equal(t, ChartPie, ParseChartType(" PIE "))
	assert.Equal(t, ChartArea, ParseChartType("Area"))
	assert.Equal(t, ChartBar, ParseChartType("bar"))
	// Unknown styles render as bar charts rather than failing.
	assert.Equal(t, ChartBar, ParseChartType("scatter"))
	assert.Equal(t, ChartBar, ParseChartType(""))
}

func TestParseVariant(t *testing.T) {
	assert.Equal(t, VariantSuccess, ParseVariant("success"))
	assert.Equal(t, VariantWarning, ParseVariant("Warning"))
	assert.Equal(t, VariantError, ParseVariant("error"))
	assert.Equal(t, VariantDefault, ParseVariant("default"))
	assert.Equal(t, VariantDefault, ParseVariant("fancy"))
	assert.Equal(t, VariantDefault, ParseVariant(""))
}

func TestAgentResponseUnmarshal(t *testing.T) {
	payload := []byte(`{
		"answer": "It is sunny in Tokyo.",
		"component": {"type": "weather_card", "location": "Tokyo", "temperature": 22, "condition": "Sunny"},
		"reasoning": "Weather query"
	}`)

	var resp AgentResponse
	require.NoError(t, json.Unmarshal(payload, &resp))
	assert.Equal(t, "It is sunny in Tokyo.", resp.Answer)
	assert.Equal(t, "Weather query", resp.Reasoning)

	card, ok := resp.Component.(*WeatherCard)
	require.True(t, ok)
	assert.Equal(t, "Tokyo", card.Location)
	assert.Equal(t, 22.0, card.Temperature)
}

func TestAgentResponseUnmarshal_NullComponent(t *testing.T) {
	var resp AgentResponse
	require.NoError(t, json.Unmarshal([]byte(`{"answer":"hi","component":null,"reasoning":""}`), &resp))
	assert.Nil(t, resp.Component)
}
