package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

func TestToDomainTripRequest(t *testing.T) {
	req := validItineraryRequest()
	req.Budget = "LUXURY"
	req.Pace = "Relaxed"

	trip := ToDomainTripRequest(&req)

	assert.Equal(t, "SFO", trip.Origin)
	assert.Equal(t, "CDG", trip.Destination)
	assert.Equal(t, domain.BudgetTierLuxury, trip.Budget)
	assert.Equal(t, domain.PaceRelaxed, trip.Pace)
	assert.Equal(t, []string{"food"}, trip.Interests)
}

func TestToDomainFlightQuery(t *testing.T) {
	req := validSearchRequest()
	req.NonStop = true

	query := ToDomainFlightQuery(&req)

	assert.Equal(t, "SFO", query.Origin)
	assert.Equal(t, "2025-06-01", query.DepartureDate)
	assert.Equal(t, "2025-06-08", query.ReturnDate)
	assert.Equal(t, 2, query.Adults)
	assert.True(t, query.NonStop)
	assert.Equal(t, 10, query.MaxResults)
}

func TestToSearchOptions(t *testing.T) {
	tests := []struct {
		name     string
		maxStops string
		sortBy   string
		wantStop domain.StopCeiling
		wantSort domain.SortOption
	}{
		{name: "defaults", wantStop: domain.StopCeilingAny, wantSort: domain.SortByPriceAsc},
		{name: "direct only", maxStops: "0", sortBy: "departure", wantStop: domain.StopCeiling(0), wantSort: domain.SortByDeparture},
		{name: "two plus", maxStops: "2+", sortBy: "price_desc", wantStop: domain.StopCeiling(2), wantSort: domain.SortByPriceDesc},
		{name: "any is explicit", maxStops: "any", sortBy: "duration", wantStop: domain.StopCeilingAny, wantSort: domain.SortByDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSearchRequest()
			req.MaxStops = tt.maxStops
			req.SortBy = tt.sortBy

			opts := ToSearchOptions(&req)
			assert.Equal(t, tt.wantStop, opts.MaxStops)
			assert.Equal(t, tt.wantSort, opts.SortBy)
		})
	}
}

func TestToFlightSearchResponseDTO(t *testing.T) {
	resp := &domain.FlightSearchResponse{
		Query: domain.FlightQueryResponse{Origin: "SFO", Destination: "CDG"},
		Metadata: domain.SearchMetadata{
			TotalResults: 1,
			Provider:     "amadeus",
			SearchTimeMs: 210,
		},
		Offers: []domain.FlightOffer{
			{
				ID:       "1",
				Price:    "842.50",
				Currency: "USD",
				Outbound: &domain.Leg{
					DepartureAirport: "SFO",
					DepartureTime:    "2025-06-01T09:00:00",
					ArrivalAirport:   "CDG",
					ArrivalTime:      "2025-06-02T06:15:00",
					Duration:         "PT11H15M",
					Stops:            0,
					Carriers:         []string{"AF"},
				},
			},
		},
	}

	dto := ToFlightSearchResponseDTO(resp)

	assert.Equal(t, "SFO", dto.Query.Origin)
	assert.Equal(t, "amadeus", dto.Metadata.Provider)
	require.Len(t, dto.Offers, 1)

	outbound := dto.Offers[0].Outbound
	require.NotNil(t, outbound)
	assert.Equal(t, "9:00 AM", outbound.DepartureDisplay)
	assert.Equal(t, "6:15 AM", outbound.ArrivalDisplay)
	assert.Equal(t, "11h 15m", outbound.DurationDisplay)
	assert.Nil(t, dto.Offers[0].Return)
}

func TestToFlightSearchResponseDTOEmptyOffers(t *testing.T) {
	resp := &domain.FlightSearchResponse{Offers: []domain.FlightOffer{}}

	dto := ToFlightSearchResponseDTO(resp)
	assert.NotNil(t, dto.Offers)
	assert.Empty(t, dto.Offers)
}
