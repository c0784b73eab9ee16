package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimum environment for Load to succeed.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GROK_API_KEY", "test-grok-key")
	t.Setenv("AMADEUS_API_KEY", "test-amadeus-key")
	t.Setenv("AMADEUS_API_SECRET", "test-amadeus-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "grok", cfg.Planner.Backend)
	assert.Equal(t, "https://api.x.ai/v1", cfg.Planner.GrokBaseURL)
	assert.Equal(t, "grok-2-latest", cfg.Planner.GrokModel)
	assert.Equal(t, "gemini-1.5-pro", cfg.Planner.GeminiModel)
	assert.Equal(t, "production", cfg.Amadeus.Env)
	assert.Equal(t, "USD", cfg.Search.DefaultCurrency)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("APP_ENV", "production")
	t.Setenv("AMADEUS_ENV", "test")
	t.Setenv("DEFAULT_CURRENCY", "EUR")
	t.Setenv("PLANNER_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "test", cfg.Amadeus.Env)
	assert.Equal(t, "EUR", cfg.Search.DefaultCurrency)
	assert.Equal(t, 45*time.Second, cfg.Planner.Timeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr string
	}{
		{
			name: "invalid port",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("SERVER_PORT", "70000")
			},
			wantErr: "SERVER_PORT",
		},
		{
			name: "invalid log level",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("LOG_LEVEL", "verbose")
			},
			wantErr: "LOG_LEVEL",
		},
		{
			name: "invalid log format",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("LOG_FORMAT", "xml")
			},
			wantErr: "LOG_FORMAT",
		},
		{
			name: "invalid app env",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("APP_ENV", "qa")
			},
			wantErr: "APP_ENV",
		},
		{
			name: "unknown planner backend",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("PLANNER_BACKEND", "llama")
			},
			wantErr: "PLANNER_BACKEND",
		},
		{
			name: "grok backend requires key",
			setup: func(t *testing.T) {
				t.Setenv("AMADEUS_API_KEY", "k")
				t.Setenv("AMADEUS_API_SECRET", "s")
				t.Setenv("GROK_API_KEY", "")
			},
			wantErr: "GROK_API_KEY is required",
		},
		{
			name: "gemini backend requires key",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("PLANNER_BACKEND", "gemini")
				t.Setenv("GEMINI_API_KEY", "")
			},
			wantErr: "GEMINI_API_KEY is required",
		},
		{
			name: "huggingface backend requires token",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("PLANNER_BACKEND", "huggingface")
				t.Setenv("HF_API_TOKEN", "")
			},
			wantErr: "HF_API_TOKEN is required",
		},
		{
			name: "missing amadeus credentials",
			setup: func(t *testing.T) {
				t.Setenv("GROK_API_KEY", "k")
				t.Setenv("AMADEUS_API_KEY", "")
				t.Setenv("AMADEUS_API_SECRET", "")
			},
			wantErr: "AMADEUS_API_KEY",
		},
		{
			name: "invalid amadeus env",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("AMADEUS_ENV", "sandbox")
			},
			wantErr: "AMADEUS_ENV",
		},
		{
			name: "non-positive planner timeout",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("PLANNER_TIMEOUT", "0s")
			},
			wantErr: "PLANNER_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustLoadPanicsOnInvalidConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "not-a-number")

	assert.Panics(t, func() { MustLoad() })
}
