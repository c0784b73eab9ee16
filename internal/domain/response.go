package domain

// FlightSearchResponse represents the response of a flight search after
// normalization, filtering, and sorting.
type FlightSearchResponse struct {
	// Query contains the original search parameters
	Query FlightQueryResponse `json:"query"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Offers contains the normalized offers after filtering and sorting
	Offers []FlightOffer `json:"offers"`
}

// FlightQueryResponse echoes the search parameters in the response.
type FlightQueryResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	Currency      string `json:"currency"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of offers returned after filtering
	TotalResults int `json:"total_results"`

	// Provider is the flight-search provider that served the query
	Provider string `json:"provider"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewFlightSearchResponse creates a FlightSearchResponse for the given query
// and offers. A nil offer slice becomes an empty one so the JSON response
// always carries an array.
func NewFlightSearchResponse(query *FlightQuery, offers []FlightOffer, metadata SearchMetadata) *FlightSearchResponse {
	if offers == nil {
		offers = []FlightOffer{}
	}
	metadata.TotalResults = len(offers)

	return &FlightSearchResponse{
		Query: FlightQueryResponse{
			Origin:        query.Origin,
			Destination:   query.Destination,
			DepartureDate: query.DepartureDate,
			ReturnDate:    query.ReturnDate,
			Adults:        query.Adults,
			Currency:      query.Currency,
		},
		Metadata: metadata,
		Offers:   offers,
	}
}
