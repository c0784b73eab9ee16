package http

import (
	"strings"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
	"github.com/travel-planner/ai-travel-planner/internal/usecase"
)

// ToDomainTripRequest converts an itinerary request DTO to the domain type.
// Defaults are applied by the use case, not here.
func ToDomainTripRequest(req *GenerateItineraryRequest) domain.TripRequest {
	return domain.TripRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Travelers:   req.Travelers,
		Budget:      domain.BudgetTier(strings.ToLower(req.Budget)),
		Pace:        domain.Pace(strings.ToLower(req.Pace)),
		Interests:   req.Interests,
		Currency:    req.Currency,
	}
}

// ToDomainFlightQuery converts a flight search DTO to the domain query.
func ToDomainFlightQuery(req *SearchFlightsRequest) domain.FlightQuery {
	return domain.FlightQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
		Currency:      req.Currency,
		NonStop:       req.NonStop,
		MaxResults:    req.MaxResults,
	}
}

// ToSearchOptions converts the filter/sort fields of a flight search DTO to
// use case options. Unrecognized values fall back to the defaults.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		MaxStops: domain.ParseStopCeiling(strings.ToLower(req.MaxStops)),
		SortBy:   domain.ParseSortOption(strings.ToLower(req.SortBy)),
	}
}
