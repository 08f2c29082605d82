// In file: internal/tools/weather_tool.go
package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

const weatherToolName = "get_weather"

var weatherConditions = []struct {
	condition string
	icon      string
}{
	{"Sunny", "sunny"},
	{"Cloudy", "cloudy"},
	{"Partly Cloudy", "cloudy"},
	{"Rainy", "rainy"},
	{"Clear", "sunny"},
	{"Overcast", "cloudy"},
}

// WeatherTool is the answer stage's external data source. By default it
// generates mock weather data; in live mode it queries wttr.in and falls
// back to the mock generator when real data is unavailable.
type WeatherTool struct {
	httpClient *http.Client
	live       bool
}

var _ ToolExecutor = (*WeatherTool)(nil)

// NewWeatherTool creates the mock-mode weather tool.
func NewWeatherTool() *WeatherTool {
	return &WeatherTool{}
}

// NewLiveWeatherTool creates a weather tool backed by wttr.in. The
// dedicated HTTP client carries a timeout so a slow upstream cannot hang a
// request.
func NewLiveWeatherTool() *WeatherTool {
	return &WeatherTool{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		live:       true,
	}
}

func (wt *WeatherTool) Definition() Tool {
	return NewFunctionTool(
		weatherToolName,
		"Get current weather information for any city",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"city": {
					Type:        "string",
					Description: "The city to get weather for, e.g. Tokyo or Paris",
				},
			},
			Required: []string{"city"},
		},
	)
}

func (wt *WeatherTool) Execute(arguments string) (string, error) {
	var args struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments for weather tool: %w", err)
	}
	if strings.TrimSpace(args.City) == "" {
		return "Error: city cannot be empty.", nil
	}

	if wt.live {
		if report, err := wt.fetchLive(args.City); err == nil {
			return report, nil
		}
		// Real data unavailable; degrade to the mock generator.
	}
	return mockWeatherReport(args.City), nil
}

// mockWeatherReport produces plausible weather for a city: temperature in
// -5..35 °C, humidity 30..90 %, wind 5..25 km/h.
func mockWeatherReport(city string) string {
	pick := weatherConditions[rand.IntN(len(weatherConditions))]
	temperature := rand.IntN(41) - 5
	humidity := rand.IntN(61) + 30
	windSpeed := rand.IntN(21) + 5

	return fmt.Sprintf("Current weather in %s: %d°C, %s. Humidity: %d%%, Wind: %d km/h",
		city, temperature, pick.condition, humidity, windSpeed)
}

func (wt *WeatherTool) fetchLive(city string) (string, error) {
	url := fmt.Sprintf("https://wttr.in/%s?format=3", strings.ReplaceAll(city, " ", "+"))

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create weather API request: %w", err)
	}
	// Some services block default Go HTTP clients.
	req.Header.Set("User-Agent", "Agent-UI-Service/1.0")

	resp, err := wt.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather API returned non-200 status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read weather API response: %w", err)
	}

	report := strings.TrimSpace(string(body))
	if strings.Contains(report, "Unknown location") {
		return "", fmt.Errorf("unknown location %q", city)
	}
	return report, nil
}
