package amadeus

import "encoding/json"

// flightOffersResponse is the envelope of the flight-offers search endpoint.
// Offers are kept raw so the original record can travel with the normalized
// form for diagnostic display.
type flightOffersResponse struct {
	Data []json.RawMessage `json:"data"`
}

// offerRecord is the subset of an Amadeus flight offer the normalizer reads.
// Unknown fields are ignored; missing fields decode to zero values.
type offerRecord struct {
	ID    string `json:"id"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
	Itineraries []itineraryRecord `json:"itineraries"`
}

// itineraryRecord is one directional journey within an offer.
type itineraryRecord struct {
	Duration string          `json:"duration"`
	Segments []segmentRecord `json:"segments"`
}

// segmentRecord is one flight segment within an itinerary.
type segmentRecord struct {
	Departure   endpointRecord `json:"departure"`
	Arrival     endpointRecord `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
}

// endpointRecord is a departure or arrival point of a segment.
type endpointRecord struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}
