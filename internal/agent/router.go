// In file: internal/agent/router.go

// Package agent implements the two-stage query pipeline: an answer agent
// that produces the textual answer, a UI agent that selects and populates a
// renderable component, and the router that classifies which component
// category fits a query/answer pair.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agent-ui-service/internal/llm"
)

// Category is the intermediate routing classification for a query/answer
// pair. It is never persisted; it only picks the toolset for the selection
// stage.
type Category string

const (
	CategoryDataDisplay       Category = "data_display"
	CategoryDataVisualization Category = "data_visualization"
	CategoryContent           Category = "content"
	CategoryGeneral           Category = "general"
)

var knownCategories = []Category{
	CategoryDataDisplay,
	CategoryDataVisualization,
	CategoryContent,
	CategoryGeneral,
}

var categoryDescriptions = map[Category]string{
	CategoryDataDisplay:       "Components for displaying data in tables, lists, cards, etc.",
	CategoryDataVisualization: "Components for charts, graphs, and visual data representation",
	CategoryContent:           "Components for general content display, information cards, text",
	CategoryGeneral:           "General purpose components that don't fit other categories",
}

// RouterConfig holds the keyword vocabularies for rule-based routing,
// loaded from config.yaml. The evaluation order is fixed in code: weather,
// then chart, then table, then informational.
type RouterConfig struct {
	WeatherKeywords []string `yaml:"weather_keywords"`
	ChartKeywords   []string `yaml:"chart_keywords"`
	TableKeywords   []string `yaml:"table_keywords"`
	InfoKeywords    []string `yaml:"info_keywords"`
}

// DefaultRouterConfig returns the compiled-in vocabularies used when no
// config file overrides them.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		WeatherKeywords: []string{"weather", "temperature", "humidity", "wind"},
		ChartKeywords:   []string{"chart", "graph", "plot", "visualization", "bar", "line", "pie", "statistics"},
		TableKeywords:   []string{"table", "list", "display", "show", "data", "users", "records", "rows", "columns"},
		InfoKeywords:    []string{"explain", "information", "about", "description", "what is", "tell me"},
	}
}

// Router classifies a query/answer pair into a component category, trying
// cheap keyword rules before spending a model call.
type Router struct {
	cfg    *RouterConfig
	client llm.LLMClient
	model  string
}

func NewRouter(cfg *RouterConfig, client llm.LLMClient, model string) *Router {
	if cfg == nil {
		cfg = DefaultRouterConfig()
	}
	return &Router{cfg: cfg, client: client, model: model}
}

// Classify applies the ordered keyword rules over the lowercased
// concatenation of query and answer. The order is a load-bearing
// tie-break: weather always wins, so "weather chart for Tokyo" routes to
// data_display, not data_visualization. Returns false when no rule
// matches.
func (r *Router) Classify(query, answer string) (Category, bool) {
	combined := strings.ToLower(query + " " + answer)

	if containsAny(combined, r.cfg.WeatherKeywords) {
		return CategoryDataDisplay, true
	}
	if containsAny(combined, r.cfg.ChartKeywords) {
		return CategoryDataVisualization, true
	}
	if containsAny(combined, r.cfg.TableKeywords) {
		return CategoryDataDisplay, true
	}
	if containsAny(combined, r.cfg.InfoKeywords) {
		return CategoryContent, true
	}
	return "", false
}

// Route resolves a category for the pair, escalating to a model call when
// the rules are silent. It never fails: every error path lands on
// CategoryContent.
func (r *Router) Route(ctx context.Context, query, answer string) Category {
	if category, ok := r.Classify(query, answer); ok {
		return category
	}
	return r.modelRoute(ctx, query, answer)
}

func (r *Router) modelRoute(ctx context.Context, query, answer string) Category {
	result, err := r.client.Generate(ctx,
		[]llm.Message{{Role: llm.RoleUser, Content: buildRoutingPrompt(query, answer)}},
		&llm.GenerationConfig{Model: r.model, MaxTokens: 32},
		nil,
	)
	if err != nil {
		log.Printf("Model routing failed, defaulting to %s: %v", CategoryContent, &TransportError{Op: "route", Err: err})
		return CategoryContent
	}

	raw := strings.ToLower(strings.TrimSpace(result.Content))
	if raw == "" {
		log.Printf("Model routing returned empty output, defaulting to %s", CategoryContent)
		return CategoryContent
	}

	for _, category := range knownCategories {
		if raw == string(category) {
			return category
		}
	}
	// No exact match; accept substring containment in either direction.
	for _, category := range knownCategories {
		if strings.Contains(raw, string(category)) || strings.Contains(string(category), raw) {
			return category
		}
	}

	log.Printf("Model routing output %q: %v, defaulting to %s", raw, ErrAmbiguousRouting, CategoryContent)
	return CategoryContent
}

func buildRoutingPrompt(query, answer string) string {
	var b strings.Builder
	b.WriteString("You are a component category router. Your job is to analyze a user query and corresponding answer, then select the most appropriate UI component category.\n\n")
	b.WriteString("Available categories:\n")
	for _, category := range knownCategories {
		fmt.Fprintf(&b, "- %s: %s\n", category, categoryDescriptions[category])
	}
	fmt.Fprintf(&b, "\nUser Query: %q\nGenerated Answer: %q\n\n", query, answer)
	b.WriteString("Based on the query and answer, which category would be most appropriate for rendering this response?\n\n")
	b.WriteString(`Respond with ONLY the category name (e.g., "data_visualization", "data_display", "content", or "general").`)
	return b.String()
}

// RoutingExplanation describes why a category was selected, for use in
// response reasoning.
func RoutingExplanation(category Category) string {
	description, ok := categoryDescriptions[category]
	if !ok {
		description = "Unknown category"
	}
	return fmt.Sprintf("Routed to '%s' category: %s", category, description)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
