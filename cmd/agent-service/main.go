// In file: cmd/agent-service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"agent-ui-service/internal/agent"
	"agent-ui-service/internal/llm"
	"agent-ui-service/internal/tools"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// main is the entry point for the application.
// Its primary role is the "Composition Root": it loads configuration,
// initializes all services, injects dependencies, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Agent UI Service | Version: %s | Commit: %s | Pipeline: tools %s, router %s, prompts %s",
		buildInfo.Version, buildInfo.GitCommit,
		buildInfo.Pipeline.Tools, buildInfo.Pipeline.Router, buildInfo.Pipeline.Prompts)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	client, err := initializeLLMClient(cfg)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}

	registry := initializeComponentRegistry()
	weatherTool := initializeWeatherTool(cfg)

	router := agent.NewRouter(cfg.RouterConfig, client, cfg.ModelID)
	answerAgent := agent.NewAnswerAgent(client, cfg.ModelID, weatherTool)
	uiAgent := agent.NewUIAgent(client, cfg.ModelID, registry, router)
	pipeline := agent.NewOrchestrator(answerAgent, uiAgent, cfg.RequestTimeout)

	// Redis is optional: without it the service simply skips response caching.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("⚠️ Could not connect to Redis at %s, response caching disabled: %v", cfg.RedisAddr, err)
			rdb = nil
		} else {
			log.Println("✅ Redis response cache connected.")
		}
	}

	queryHandler := NewQueryHandler(pipeline, rdb)
	wsHandler := NewWSHandler(pipeline, cfg.AllowedOrigins)
	log.Println("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	engine.GET("/", queryHandler.HandleRoot)
	engine.GET("/health", queryHandler.HandleHealth)
	engine.POST("/api/query", queryHandler.HandleQuery)
	engine.GET("/ws/query", gin.WrapH(wsHandler))

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeLLMClient creates the provider client for the configured model.
func initializeLLMClient(cfg *AppConfig) (llm.LLMClient, error) {
	switch {
	case strings.HasPrefix(cfg.ModelID, "gemini"):
		return llm.NewGeminiClient(cfg.APIKey, cfg.ModelID)
	case strings.HasPrefix(cfg.ModelID, "gpt"):
		return llm.NewOpenAIClient(cfg.APIKey)
	default:
		return nil, fmt.Errorf("unknown model provider for %s", cfg.ModelID)
	}
}

// initializeComponentRegistry registers the four component tools the
// selection stage draws from.
func initializeComponentRegistry() *tools.ToolManager {
	registry := tools.NewToolManager()
	registry.Register(tools.NewWeatherCardTool())
	registry.Register(tools.NewChartCardTool())
	registry.Register(tools.NewDataTableTool())
	registry.Register(tools.NewInfoCardTool())
	log.Printf("✅ Component registry initialized with %d tools.", registry.ToolCount())
	return registry
}

// initializeWeatherTool selects the answer stage's weather data source.
func initializeWeatherTool(cfg *AppConfig) tools.ToolExecutor {
	if cfg.WeatherMode == "live" {
		log.Println("✅ Weather tool running in live mode.")
		return tools.NewLiveWeatherTool()
	}
	return tools.NewWeatherTool()
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Service is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
