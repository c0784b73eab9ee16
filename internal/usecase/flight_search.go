package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
	"github.com/travel-planner/ai-travel-planner/internal/infrastructure/logger"
	"github.com/travel-planner/ai-travel-planner/internal/infrastructure/timeutil"
)

// DefaultSearchTimeout bounds a single flight search including the
// provider's token refresh.
const DefaultSearchTimeout = 30 * time.Second

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search queries the flight provider, then filters and sorts the
	// normalized offers according to the options.
	Search(ctx context.Context, query domain.FlightQuery, opts SearchOptions) (*domain.FlightSearchResponse, error)
}

// flightSearchUseCase implements FlightSearchUseCase with a single provider.
type flightSearchUseCase struct {
	provider        domain.FlightProvider
	defaultCurrency string
	timeout         time.Duration
	clock           timeutil.Clock
	log             *logger.Logger
}

// SearchConfig contains configuration options for the flight search use case.
type SearchConfig struct {
	// DefaultCurrency is applied to queries that omit a currency
	DefaultCurrency string

	// Timeout bounds a single search call (default: 30s)
	Timeout time.Duration

	// Clock supplies time for search duration metadata (default: real time)
	Clock timeutil.Clock
}

// NewFlightSearchUseCase creates a FlightSearchUseCase with the given
// provider. A nil config uses defaults; a nil logger disables logging.
func NewFlightSearchUseCase(provider domain.FlightProvider, config *SearchConfig, log *logger.Logger) FlightSearchUseCase {
	cfg := SearchConfig{
		DefaultCurrency: domain.DefaultCurrency,
		Timeout:         DefaultSearchTimeout,
		Clock:           timeutil.RealClock{},
	}
	if config != nil {
		if config.DefaultCurrency != "" {
			cfg.DefaultCurrency = config.DefaultCurrency
		}
		if config.Timeout > 0 {
			cfg.Timeout = config.Timeout
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &flightSearchUseCase{
		provider:        provider,
		defaultCurrency: cfg.DefaultCurrency,
		timeout:         cfg.Timeout,
		clock:           cfg.Clock,
		log:             log.WithProvider(provider.Name()),
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, query domain.FlightQuery, opts SearchOptions) (*domain.FlightSearchResponse, error) {
	query.SetDefaults(uc.defaultCurrency)
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := uc.clock.Now()
	offers, err := uc.provider.Search(ctx, query)
	if err != nil {
		uc.log.Error().Err(err).
			Str("origin", query.Origin).
			Str("destination", query.Destination).
			Msg("flight search failed")
		return nil, fmt.Errorf("search flights: %w", err)
	}

	filtered := FilterByStops(offers, opts.MaxStops)
	sorted := SortOffers(filtered, opts.SortBy)

	metadata := domain.SearchMetadata{
		Provider:     uc.provider.Name(),
		SearchTimeMs: uc.clock.Now().Sub(start).Milliseconds(),
	}

	uc.log.Info().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("offers_raw", len(offers)).
		Int("offers_returned", len(sorted)).
		Int64("search_time_ms", metadata.SearchTimeMs).
		Msg("flight search completed")

	return domain.NewFlightSearchResponse(&query, sorted, metadata), nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
