package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
	"github.com/travel-planner/ai-travel-planner/internal/infrastructure/jsonextract"
	"github.com/travel-planner/ai-travel-planner/internal/infrastructure/logger"
)

// DefaultGenerationTimeout bounds a single itinerary generation call.
const DefaultGenerationTimeout = 90 * time.Second

// PlannerUseCase defines the interface for itinerary generation.
type PlannerUseCase interface {
	// GenerateItinerary validates the request, prompts the configured LLM
	// backend, and parses the response into an itinerary. A response that
	// yields no parseable JSON produces an empty itinerary, not an error.
	GenerateItinerary(ctx context.Context, req domain.TripRequest) (*domain.Itinerary, error)
}

// plannerUseCase implements PlannerUseCase on top of an ItineraryGenerator.
type plannerUseCase struct {
	generator       domain.ItineraryGenerator
	defaultCurrency string
	timeout         time.Duration
	log             *logger.Logger
}

// PlannerConfig contains configuration options for the planner use case.
type PlannerConfig struct {
	// DefaultCurrency is applied to requests that omit a currency
	DefaultCurrency string

	// Timeout bounds a single generation call (default: 90s)
	Timeout time.Duration
}

// NewPlannerUseCase creates a PlannerUseCase with the given generator.
// A nil config uses defaults; a nil logger disables logging.
func NewPlannerUseCase(generator domain.ItineraryGenerator, config *PlannerConfig, log *logger.Logger) PlannerUseCase {
	cfg := PlannerConfig{
		DefaultCurrency: domain.DefaultCurrency,
		Timeout:         DefaultGenerationTimeout,
	}
	if config != nil {
		if config.DefaultCurrency != "" {
			cfg.DefaultCurrency = config.DefaultCurrency
		}
		if config.Timeout > 0 {
			cfg.Timeout = config.Timeout
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &plannerUseCase{
		generator:       generator,
		defaultCurrency: cfg.DefaultCurrency,
		timeout:         cfg.Timeout,
		log:             log.WithGenerator(generator.Name()),
	}
}

// GenerateItinerary implements PlannerUseCase.GenerateItinerary.
func (uc *plannerUseCase) GenerateItinerary(ctx context.Context, req domain.TripRequest) (*domain.Itinerary, error) {
	req.SetDefaults(uc.defaultCurrency)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	prompt := BuildPrompt(req)

	start := time.Now()
	raw, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		uc.log.Error().Err(err).
			Str("destination", req.Destination).
			Msg("itinerary generation failed")
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	itinerary := parseItinerary(raw)
	if itinerary.IsEmpty() {
		uc.log.Warn().
			Str("destination", req.Destination).
			Int("response_len", len(raw)).
			Msg("generator response contained no parseable itinerary")
	} else {
		uc.log.Info().
			Str("destination", itinerary.Destination).
			Int("total_days", itinerary.TotalDays).
			Dur("elapsed", time.Since(start)).
			Msg("itinerary generated")
	}

	return itinerary, nil
}

// parseItinerary extracts the JSON object from the raw model output and
// decodes it. total_days is clamped before decoding when it is an integer.
// Anything unusable degrades to an empty itinerary.
func parseItinerary(raw string) *domain.Itinerary {
	obj := jsonextract.Extract(raw)

	// JSON numbers decode as float64; only clamp integer-valued days.
	if v, ok := obj["total_days"].(float64); ok && v == math.Trunc(v) {
		obj["total_days"] = float64(domain.ClampDays(int(v)))
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return &domain.Itinerary{}
	}

	var itinerary domain.Itinerary
	if err := json.Unmarshal(data, &itinerary); err != nil {
		return &domain.Itinerary{}
	}
	return &itinerary
}

// Ensure plannerUseCase implements PlannerUseCase at compile time.
var _ PlannerUseCase = (*plannerUseCase)(nil)
