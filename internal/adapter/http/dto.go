package http

import (
	"encoding/json"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
	"github.com/travel-planner/ai-travel-planner/internal/infrastructure/timeutil"
)

// FlightSearchResponseDTO is the API shape of a flight search result. It
// mirrors the domain response with display-formatted times and durations
// added per leg.
type FlightSearchResponseDTO struct {
	Query    domain.FlightQueryResponse `json:"query"`
	Metadata domain.SearchMetadata      `json:"metadata"`
	Offers   []OfferDTO                 `json:"offers"`
}

// OfferDTO is the API shape of a normalized flight offer.
type OfferDTO struct {
	ID       string          `json:"id"`
	Price    string          `json:"price"`
	Currency string          `json:"currency"`
	Outbound *LegDTO         `json:"outbound,omitempty"`
	Return   *LegDTO         `json:"return,omitempty"`
	Raw      json.RawMessage `json:"raw,omitempty"`
}

// LegDTO is the API shape of a flight leg. The display fields render
// provider timestamps and ISO durations for direct presentation.
type LegDTO struct {
	DepartureAirport string           `json:"departure_airport"`
	DepartureTime    string           `json:"departure_time"`
	DepartureDisplay string           `json:"departure_display"`
	ArrivalAirport   string           `json:"arrival_airport"`
	ArrivalTime      string           `json:"arrival_time"`
	ArrivalDisplay   string           `json:"arrival_display"`
	Duration         string           `json:"duration"`
	DurationDisplay  string           `json:"duration_display"`
	Stops            int              `json:"stops"`
	Carriers         []string         `json:"carriers"`
	Segments         []domain.Segment `json:"segments"`
}

// ToFlightSearchResponseDTO converts a domain search response to its API shape.
func ToFlightSearchResponseDTO(resp *domain.FlightSearchResponse) *FlightSearchResponseDTO {
	offers := make([]OfferDTO, 0, len(resp.Offers))
	for _, offer := range resp.Offers {
		offers = append(offers, toOfferDTO(offer))
	}

	return &FlightSearchResponseDTO{
		Query:    resp.Query,
		Metadata: resp.Metadata,
		Offers:   offers,
	}
}

func toOfferDTO(offer domain.FlightOffer) OfferDTO {
	return OfferDTO{
		ID:       offer.ID,
		Price:    offer.Price,
		Currency: offer.Currency,
		Outbound: toLegDTO(offer.Outbound),
		Return:   toLegDTO(offer.Return),
		Raw:      offer.Raw,
	}
}

func toLegDTO(leg *domain.Leg) *LegDTO {
	if leg == nil {
		return nil
	}

	return &LegDTO{
		DepartureAirport: leg.DepartureAirport,
		DepartureTime:    leg.DepartureTime,
		DepartureDisplay: timeutil.FormatClockTime(leg.DepartureTime),
		ArrivalAirport:   leg.ArrivalAirport,
		ArrivalTime:      leg.ArrivalTime,
		ArrivalDisplay:   timeutil.FormatClockTime(leg.ArrivalTime),
		Duration:         leg.Duration,
		DurationDisplay:  timeutil.FormatISODuration(leg.Duration),
		Stops:            leg.Stops,
		Carriers:         leg.Carriers,
		Segments:         leg.Segments,
	}
}
