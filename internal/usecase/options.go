// Package usecase contains the business logic for itinerary generation and
// flight search. It orchestrates the LLM and flight-provider ports and owns
// the offer filter/sort pipeline.
package usecase

import "github.com/travel-planner/ai-travel-planner/internal/domain"

// SearchOptions contains optional parameters for a flight search.
type SearchOptions struct {
	// MaxStops is the stop-count ceiling applied to each leg
	// (default: unbounded)
	MaxStops domain.StopCeiling

	// SortBy specifies how to sort the results (default: price ascending)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxStops: domain.StopCeilingAny,
		SortBy:   domain.SortByPriceAsc,
	}
}
