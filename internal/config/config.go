// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env
// files, layered so that local key files override the checked-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// localEnvFiles are loaded after .env and override it when present.
// keys.env is the conventional place for API credentials kept out of VCS.
var localEnvFiles = []string{".env.local", "keys.env"}

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
	Planner PlannerConfig
	Amadeus AmadeusConfig
	Search  SearchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"120s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// PlannerConfig holds itinerary generation settings: which LLM backend to
// use and the credentials/models for each.
type PlannerConfig struct {
	// Backend selects the LLM backend: grok, gemini, or huggingface
	Backend string `env:"PLANNER_BACKEND" envDefault:"grok"`

	GrokAPIKey  string `env:"GROK_API_KEY"`
	GrokBaseURL string `env:"GROK_BASE_URL" envDefault:"https://api.x.ai/v1"`
	GrokModel   string `env:"GROK_MODEL" envDefault:"grok-2-latest"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-pro"`

	HFAPIToken string `env:"HF_API_TOKEN"`
	HFBaseURL  string `env:"HF_BASE_URL" envDefault:"https://router.huggingface.co/v1"`
	HFModel    string `env:"HF_MODEL" envDefault:"google/gemma-2-2b-it"`

	// Timeout bounds a single generation call
	Timeout time.Duration `env:"PLANNER_TIMEOUT" envDefault:"90s"`
}

// AmadeusConfig holds flight-search provider settings.
type AmadeusConfig struct {
	APIKey    string `env:"AMADEUS_API_KEY"`
	APISecret string `env:"AMADEUS_API_SECRET"`

	// Env selects the Amadeus hostname: test or production
	Env string `env:"AMADEUS_ENV" envDefault:"production"`

	// Timeout bounds a single flight search including token refresh
	Timeout time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"30s"`
}

// SearchConfig holds general search settings.
type SearchConfig struct {
	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"USD"`
}

// Load reads configuration from environment variables.
// It loads .env first, then overrides from .env.local and keys.env when
// those files exist, so user-local credentials win over checked-in values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}
	for _, file := range localEnvFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Overload(file); err != nil {
				return nil, fmt.Errorf("load %s: %w", file, err)
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness. A missing API key
// for the selected backends is a fatal configuration error: it is surfaced
// here, at startup, rather than on the first request.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Planner.Timeout <= 0 {
		return fmt.Errorf("PLANNER_TIMEOUT must be positive")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	switch cfg.Planner.Backend {
	case "grok":
		if cfg.Planner.GrokAPIKey == "" {
			return fmt.Errorf("GROK_API_KEY is required when PLANNER_BACKEND is grok")
		}
	case "gemini":
		if cfg.Planner.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when PLANNER_BACKEND is gemini")
		}
	case "huggingface":
		if cfg.Planner.HFAPIToken == "" {
			return fmt.Errorf("HF_API_TOKEN is required when PLANNER_BACKEND is huggingface")
		}
	default:
		return fmt.Errorf("PLANNER_BACKEND must be one of: grok, gemini, huggingface; got %q", cfg.Planner.Backend)
	}

	if cfg.Amadeus.APIKey == "" || cfg.Amadeus.APISecret == "" {
		return fmt.Errorf("AMADEUS_API_KEY and AMADEUS_API_SECRET are required")
	}
	if cfg.Amadeus.Env != "test" && cfg.Amadeus.Env != "production" {
		return fmt.Errorf("AMADEUS_ENV must be test or production, got %q", cfg.Amadeus.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
