// In file: cmd/agent-service/config.go
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"agent-ui-service/internal/agent"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultModelID = "gemini-2.5-flash"

// AppConfig holds all configuration for the service, loaded from the
// environment and config.yaml.
type AppConfig struct {
	Port           string
	ModelID        string
	APIKey         string
	RedisAddr      string
	AllowedOrigins []string
	WeatherMode    string
	RouterConfig   *agent.RouterConfig
	RequestTimeout time.Duration
}

// yamlConfig mirrors the on-disk config.yaml layout.
type yamlConfig struct {
	Router *agent.RouterConfig `yaml:"router"`
	Agent  struct {
		RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
	} `yaml:"agent"`
}

// LoadConfig loads configuration from a .env file, environment variables,
// and config.yaml.
func LoadConfig() (*AppConfig, error) {
	// Only attempt to load a .env file in local development. In containers
	// (where GIN_MODE="release"), configuration is provided directly as
	// environment variables.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		Port:        os.Getenv("PORT"),
		ModelID:     os.Getenv("MODEL_ID"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		WeatherMode: os.Getenv("WEATHER_MODE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.ModelID == "" {
		cfg.ModelID = defaultModelID
	}
	if cfg.WeatherMode == "" {
		cfg.WeatherMode = "mock"
	}

	// Map the model prefix to the provider's API key.
	switch {
	case strings.HasPrefix(cfg.ModelID, "gemini"):
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set for model %s", cfg.ModelID)
		}
	case strings.HasPrefix(cfg.ModelID, "gpt"):
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set for model %s", cfg.ModelID)
		}
	default:
		return nil, fmt.Errorf("unknown model provider for %s", cfg.ModelID)
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	} else {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	// config.yaml carries the router vocabularies and the pipeline timeout.
	// It is optional: the built-in defaults cover a stock deployment.
	if raw, err := os.ReadFile("config.yaml"); err == nil {
		var fileCfg yamlConfig
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
		}
		cfg.RouterConfig = fileCfg.Router
		if fileCfg.Agent.RequestTimeoutSeconds > 0 {
			cfg.RequestTimeout = time.Duration(fileCfg.Agent.RequestTimeoutSeconds) * time.Second
		}
	} else {
		log.Println("WARNING: No config.yaml found, using built-in router defaults.")
	}
	if cfg.RouterConfig == nil {
		cfg.RouterConfig = agent.DefaultRouterConfig()
	}

	return cfg, nil
}
