// In file: internal/tools/weather_tool_test.go
package tools

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mockReportPattern = regexp.MustCompile(
	`^Current weather in Tokyo: (-?\d+)°C, (.+)\. Humidity: (\d+)%, Wind: (\d+) km/h$`)

func TestWeatherTool_MockReport(t *testing.T) {
	tool := NewWeatherTool()

	for i := 0; i < 20; i++ {
		report, err := tool.Execute(`{"city":"Tokyo"}`)
		require.NoError(t, err)

		match := mockReportPattern.FindStringSubmatch(report)
		require.NotNil(t, match, "unexpected report format: %s", report)

		temperature, _ := strconv.Atoi(match[1])
		humidity, _ := strconv.Atoi(match[3])
		wind, _ := strconv.Atoi(match[4])

		assert.GreaterOrEqual(t, temperature, -5)
		assert.LessOrEqual(t, temperature, 35)
		assert.NotEmpty(t, match[2])
		assert.GreaterOrEqual(t, humidity, 30)
		assert.LessOrEqual(t, humidity, 90)
		assert.GreaterOrEqual(t, wind, 5)
		assert.LessOrEqual(t, wind, 25)
	}
}

func TestWeatherTool_EmptyCity(t *testing.T) {
	tool := NewWeatherTool()

	report, err := tool.Execute(`{"city":"  "}`)
	require.NoError(t, err)
	assert.Equal(t, "Error: city cannot be empty.", report)
}

func TestWeatherTool_InvalidArguments(t *testing.T) {
	tool := NewWeatherTool()

	_, err := tool.Execute(`{"city":`)
	assert.ErrorContains(t, err, "invalid arguments")
}

func TestWeatherTool_Definition(t *testing.T) {
	def := NewWeatherTool().Definition()
	assert.Equal(t, "get_weather", def.Function.Name)
	assert.Contains(t, def.Function.Parameters.Required, "city")
}
