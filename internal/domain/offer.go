package domain

import "encoding/json"

// Default values used when the flight-search provider omits price data.
// Missing nested fields degrade to placeholders, never to errors.
const (
	PriceUnavailable = "N/A"
	DefaultCurrency  = "USD"
)

// MissingLegStops is the stop count attributed to an offer without an
// outbound leg. It fails any finite stop ceiling while keeping the offer
// comparable.
const MissingLegStops = 999

// FlightOffer is one priced flight option in normalized form, possibly
// covering an outbound and a return leg.
type FlightOffer struct {
	// ID is the provider's offer identifier, or a generated one if absent
	ID string `json:"id"`

	// Price is the total price as a decimal string (e.g., "1,200.00"),
	// or "N/A" when the provider omitted it
	Price string `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// Outbound is the outbound leg; nil when the offer had no itineraries
	Outbound *Leg `json:"outbound,omitempty"`

	// Return is the return leg; nil for one-way offers
	Return *Leg `json:"return,omitempty"`

	// Raw retains the original provider record for diagnostic display
	Raw json.RawMessage `json:"raw,omitempty"`
}

// OutboundStops returns the outbound leg's stop count, or MissingLegStops
// when the outbound leg is absent.
func (o *FlightOffer) OutboundStops() int {
	if o.Outbound == nil {
		return MissingLegStops
	}
	return o.Outbound.Stops
}

// Leg is one directional itinerary (outbound or return) composed of one or
// more segments. A leg with zero segments is invalid and is never
// constructed; callers treat it as absent (nil).
type Leg struct {
	// DepartureAirport is the IATA code of the first segment's origin
	DepartureAirport string `json:"departure_airport"`

	// DepartureTime is the first segment's departure timestamp (ISO 8601)
	DepartureTime string `json:"departure_time"`

	// ArrivalAirport is the IATA code of the last segment's destination
	ArrivalAirport string `json:"arrival_airport"`

	// ArrivalTime is the last segment's arrival timestamp (ISO 8601)
	ArrivalTime string `json:"arrival_time"`

	// Duration is the leg duration as an ISO 8601 duration (e.g., "PT2H30M")
	Duration string `json:"duration"`

	// Stops is the number of intermediate stops (segment count - 1)
	Stops int `json:"stops"`

	// Carriers is the set of distinct carrier codes across all segments;
	// order is not significant
	Carriers []string `json:"carriers"`

	// Segments is the ordered sequence of single-flight-number hops
	Segments []Segment `json:"segments"`
}

// Segment is one single-flight-number hop within a leg.
type Segment struct {
	// DepartureAirport is the IATA code of the segment origin
	DepartureAirport string `json:"departure_airport"`

	// DepartureTime is the segment departure timestamp (ISO 8601)
	DepartureTime string `json:"departure_time"`

	// ArrivalAirport is the IATA code of the segment destination
	ArrivalAirport string `json:"arrival_airport"`

	// ArrivalTime is the segment arrival timestamp (ISO 8601)
	ArrivalTime string `json:"arrival_time"`

	// CarrierCode is the IATA code of the operating carrier
	CarrierCode string `json:"carrier_code"`

	// FlightNumber is the carrier's flight number for this hop
	FlightNumber string `json:"flight_number"`
}
