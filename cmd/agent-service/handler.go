// In file: cmd/agent-service/handler.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"agent-ui-service/internal/api"
	"agent-ui-service/internal/schema"
	cacheversion "agent-ui-service/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "uicache"
	cacheTTL       = 24 * time.Hour
)

// QueryProcessor is the pipeline contract the transport layer depends on.
type QueryProcessor interface {
	Process(ctx context.Context, query, contextText string, allowedTools []string) *schema.AgentResponse
}

// QueryHandler serves the HTTP endpoints. The Redis client is optional;
// when nil, responses are computed fresh on every request.
type QueryHandler struct {
	pipeline QueryProcessor
	rdb      *redis.Client
}

func NewQueryHandler(pipeline QueryProcessor, rdb *redis.Client) *QueryHandler {
	return &QueryHandler{pipeline: pipeline, rdb: rdb}
}

func (h *QueryHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Agent UI Service API", "status": "running"})
}

func (h *QueryHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// HandleQuery runs a query through the two-stage pipeline, consulting the
// versioned response cache first.
func (h *QueryHandler) HandleQuery(c *gin.Context) {
	startTime := time.Now()
	var req api.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	log.Printf("--- New Query ('%.40s...') ---", req.Query)

	cacheKey := cacheversion.GenerateVersionedCacheKey(cacheKeyPrefix, req.Query, req.Context)
	if h.rdb != nil && len(req.Schemas) == 0 {
		if cachedVal, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cachedResp api.QueryResponse
			if json.Unmarshal([]byte(cachedVal), &cachedResp) == nil {
				log.Println("✅ Cache HIT")
				c.JSON(http.StatusOK, cachedResp)
				return
			}
		}
		log.Println("⚠️ Cache MISS")
	}

	resp := processQuery(c.Request.Context(), h.pipeline, &req)

	if h.rdb != nil && resp.Success && len(req.Schemas) == 0 {
		if payload, err := json.Marshal(resp); err == nil {
			if err := h.rdb.Set(c.Request.Context(), cacheKey, payload, cacheTTL).Err(); err != nil {
				log.Printf("⚠️ Failed to cache response: %v", err)
			}
		}
	}

	log.Printf("--- Query served in %dms ---", time.Since(startTime).Milliseconds())
	c.JSON(http.StatusOK, resp)
}

// processQuery invokes the pipeline with a panic guard so a single bad
// request can never take the transport down. On panic the client still
// receives a complete, renderable envelope.
func processQuery(ctx context.Context, pipeline QueryProcessor, req *api.QueryRequest) (resp *api.QueryResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Panic while processing query: %v", r)
			resp = &api.QueryResponse{
				Answer:    "I apologize, but I encountered an error processing your request.",
				Component: map[string]any{},
				Success:   false,
				Error:     fmt.Sprintf("%v", r),
			}
		}
	}()

	result := pipeline.Process(ctx, req.Query, req.Context, allowedToolNames(req.Schemas))
	return &api.QueryResponse{
		Answer:    result.Answer,
		Component: result.Component,
		Reasoning: result.Reasoning,
		Success:   true,
	}
}

// allowedToolNames translates the client's schema names ("weather card",
// "ChartCard") into component tool names. Unknown names are dropped so a
// typo narrows rather than breaks the selection.
func allowedToolNames(schemas []api.SchemaDescriptor) []string {
	if len(schemas) == 0 {
		return nil
	}
	var names []string
	for _, s := range schemas {
		normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s.Name)), " ", "_")
		normalized = strings.TrimPrefix(normalized, "create_")
		switch normalized {
		case "weather_card", "weathercard":
			names = append(names, "create_weather_card")
		case "chart_card", "chartcard", "chart":
			names = append(names, "create_chart_card")
		case "data_table", "datatable", "table":
			names = append(names, "create_data_table")
		case "info_card", "infocard", "info":
			names = append(names, "create_info_card")
		default:
			log.Printf("⚠️ Ignoring unknown schema name: %q", s.Name)
		}
	}
	return names
}
