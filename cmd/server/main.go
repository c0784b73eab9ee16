// Package main is the entry point for the AI travel planner service.
//
//	@title						AI Travel Planner API
//	@version					1.0.0
//	@description				A travel planning service that generates day-by-day itineraries with an LLM backend and searches live flight offers via Amadeus.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travel-planner/ai-travel-planner/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/travel-planner/ai-travel-planner/docs"

	// Application layers
	"github.com/travel-planner/ai-travel-planner/internal/adapter/generator/gemini"
	"github.com/travel-planner/ai-travel-planner/internal/adapter/generator/grok"
	"github.com/travel-planner/ai-travel-planner/internal/adapter/generator/huggingface"
	plannerhttp "github.com/travel-planner/ai-travel-planner/internal/adapter/http"
	"github.com/travel-planner/ai-travel-planner/internal/adapter/http/middleware"
	"github.com/travel-planner/ai-travel-planner/internal/adapter/provider/amadeus"
	"github.com/travel-planner/ai-travel-planner/internal/config"
	"github.com/travel-planner/ai-travel-planner/internal/domain"
	"github.com/travel-planner/ai-travel-planner/internal/infrastructure/logger"
	"github.com/travel-planner/ai-travel-planner/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travel-planner",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Planner.Backend).
		Str("amadeus_env", cfg.Amadeus.Env).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log)

	// Setup routes
	cleanup, err := setupRoutes(e, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the use cases and handlers and registers the HTTP routes.
// It returns a cleanup function releasing any backend clients.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) (func(), error) {
	generator, cleanup, err := newGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize %s generator: %w", cfg.Planner.Backend, err)
	}

	provider, err := amadeus.NewAdapter(amadeus.ClientConfig{
		APIKey:    cfg.Amadeus.APIKey,
		APISecret: cfg.Amadeus.APISecret,
		Env:       cfg.Amadeus.Env,
		Timeout:   cfg.Amadeus.Timeout,
	})
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("initialize amadeus provider: %w", err)
	}

	plannerUseCase := usecase.NewPlannerUseCase(generator, &usecase.PlannerConfig{
		DefaultCurrency: cfg.Search.DefaultCurrency,
		Timeout:         cfg.Planner.Timeout,
	}, log)

	searchUseCase := usecase.NewFlightSearchUseCase(provider, &usecase.SearchConfig{
		DefaultCurrency: cfg.Search.DefaultCurrency,
		Timeout:         cfg.Amadeus.Timeout,
	}, log)

	plannerhttp.RegisterRoutes(e,
		plannerhttp.NewItineraryHandler(plannerUseCase),
		plannerhttp.NewFlightHandler(searchUseCase))

	return cleanup, nil
}

// newGenerator constructs the itinerary generator selected by config.
// The returned cleanup function is a no-op for backends without a client
// to close.
func newGenerator(cfg *config.Config) (domain.ItineraryGenerator, func(), error) {
	noop := func() {}

	switch cfg.Planner.Backend {
	case grok.BackendName:
		g, err := grok.New(grok.Config{
			APIKey:  cfg.Planner.GrokAPIKey,
			BaseURL: cfg.Planner.GrokBaseURL,
			Model:   cfg.Planner.GrokModel,
		})
		return g, noop, err

	case gemini.BackendName:
		g, err := gemini.New(context.Background(), gemini.Config{
			APIKey: cfg.Planner.GeminiAPIKey,
			Model:  cfg.Planner.GeminiModel,
		})
		if err != nil {
			return nil, noop, err
		}
		return g, func() { _ = g.Close() }, nil

	case huggingface.BackendName:
		g, err := huggingface.New(huggingface.Config{
			APIToken: cfg.Planner.HFAPIToken,
			BaseURL:  cfg.Planner.HFBaseURL,
			Model:    cfg.Planner.HFModel,
		})
		return g, noop, err

	default:
		// Config validation rejects unknown backends before we get here
		return nil, noop, fmt.Errorf("unknown planner backend %q", cfg.Planner.Backend)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
