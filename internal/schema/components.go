// In file: internal/schema/components.go

// Package schema defines the closed set of renderable UI component shapes
// the agents can produce: weather card, chart card, data table, and info
// card. The set is fixed at compile time; tools construct these values and
// the front end renders whatever DecodeComponent can re-parse.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ComponentType tags each component variant. Exactly one tag appears per
// response.
type ComponentType string

const (
	TypeWeatherCard ComponentType = "weather_card"
	TypeChartCard   ComponentType = "chart_card"
	TypeDataTable   ComponentType = "data_table"
	TypeInfoCard    ComponentType = "info_card"
)

// ChartType enumerates the renderable chart styles.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
	ChartArea ChartType = "area"
)

// ParseChartType normalizes a free-text chart type. Unknown values coerce
// to a bar chart rather than failing, since chart types arrive from
// model-generated text.
func ParseChartType(s string) ChartType {
	switch ChartType(strings.ToLower(strings.TrimSpace(s))) {
	case ChartLine:
		return ChartLine
	case ChartPie:
		return ChartPie
	case ChartArea:
		return ChartArea
	default:
		return ChartBar
	}
}

// Variant styles an info card.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
)

// ParseVariant normalizes a free-text variant, coercing unknown values to
// the default styling.
func ParseVariant(s string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantSuccess:
		return VariantSuccess
	case VariantWarning:
		return VariantWarning
	case VariantError:
		return VariantError
	default:
		return VariantDefault
	}
}

// Component is the tagged union over the four renderable variants.
type Component interface {
	// Kind returns the component's type tag.
	Kind() ComponentType
}

// WeatherCard shows current conditions for a location.
type WeatherCard struct {
	Type        ComponentType `json:"type"`
	Location    string        `json:"location"`
	Temperature float64       `json:"temperature"`
	Condition   string        `json:"condition"`
	Humidity    *int          `json:"humidity,omitempty"`
	WindSpeed   *float64      `json:"wind_speed,omitempty"`
	Icon        string        `json:"icon,omitempty"`
}

func NewWeatherCard(location string, temperature float64, condition string) *WeatherCard {
	return &WeatherCard{
		Type:        TypeWeatherCard,
		Location:    location,
		Temperature: temperature,
		Condition:   condition,
	}
}

func (c *WeatherCard) Kind() ComponentType { return TypeWeatherCard }

// ChartDataPoint is one labeled value in a chart series.
type ChartDataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// ChartCard renders a data series as a bar, line, pie, or area chart.
type ChartCard struct {
	Type       ComponentType    `json:"type"`
	Title      string           `json:"title"`
	ChartType  ChartType        `json:"chart_type"`
	Data       []ChartDataPoint `json:"data"`
	XAxisLabel string           `json:"x_axis_label,omitempty"`
	YAxisLabel string           `json:"y_axis_label,omitempty"`
}

func NewChartCard(title string, chartType ChartType, data []ChartDataPoint) *ChartCard {
	return &ChartCard{
		Type:      TypeChartCard,
		Title:     title,
		ChartType: chartType,
		Data:      data,
	}
}

func (c *ChartCard) Kind() ComponentType { return TypeChartCard }

// TableColumn describes one column of a data table.
type TableColumn struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// TableRow holds one row of table data keyed by column key.
type TableRow struct {
	Data map[string]any `json:"data"`
}

// DataTable renders tabular data with optional client-side search.
type DataTable struct {
	Type       ComponentType `json:"type"`
	Title      string        `json:"title"`
	Columns    []TableColumn `json:"columns"`
	Rows       []TableRow    `json:"rows"`
	Searchable bool          `json:"searchable"`
}

func NewDataTable(title string, columns []TableColumn, rows []TableRow) *DataTable {
	return &DataTable{
		Type:       TypeDataTable,
		Title:      title,
		Columns:    columns,
		Rows:       rows,
		Searchable: true,
	}
}

func (c *DataTable) Kind() ComponentType { return TypeDataTable }

// InfoCard is the general-purpose content card. It doubles as the terminal
// fallback: every error path in the selection stage degrades to one of
// these, so the front end always has something renderable.
type InfoCard struct {
	Type    ComponentType `json:"type"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Icon    string        `json:"icon,omitempty"`
	Variant Variant       `json:"variant"`
}

func NewInfoCard(title, content string) *InfoCard {
	return &InfoCard{
		Type:    TypeInfoCard,
		Title:   title,
		Content: content,
		Variant: VariantDefault,
	}
}

func (c *InfoCard) Kind() ComponentType { return TypeInfoCard }

// DecodeComponent parses a serialized component back into its concrete
// variant using the "type" tag.
func DecodeComponent(data []byte) (Component, error) {
	var probe struct {
		Type ComponentType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("component payload is not valid JSON: %w", err)
	}

	var c Component
	switch probe.Type {
	case TypeWeatherCard:
		c = &WeatherCard{}
	case TypeChartCard:
		c = &ChartCard{}
	case TypeDataTable:
		c = &DataTable{}
	case TypeInfoCard:
		c = &InfoCard{}
	default:
		return nil, fmt.Errorf("unknown component type %q", probe.Type)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to decode %s component: %w", probe.Type, err)
	}
	return c, nil
}

// AgentResponse is the assembled result of one query: the answer text, the
// selected component, and the selection reasoning. It is request-scoped and
// immutable after creation.
type AgentResponse struct {
	Answer    string    `json:"answer"`
	Component Component `json:"component"`
	Reasoning string    `json:"reasoning"`
}

// UnmarshalJSON re-parses the component through the tagged-union decoder.
func (r *AgentResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Answer    string          `json:"answer"`
		Component json.RawMessage `json:"component"`
		Reasoning string          `json:"reasoning"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Answer = raw.Answer
	r.Reasoning = raw.Reasoning
	r.Component = nil
	if len(raw.Component) > 0 && string(raw.Component) != "null" {
		component, err := DecodeComponent(raw.Component)
		if err != nil {
			return err
		}
		r.Component = component
	}
	return nil
}
