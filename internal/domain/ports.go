package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// Prompt is the two-part instruction sent to an LLM backend.
type Prompt struct {
	// System is the fixed role/constraint instruction
	System string

	// User is the per-request trip instruction
	User string
}

// ItineraryGenerator is the port implemented by each LLM backend.
// Implementations request the structured-JSON response mode where the
// backend supports it, and return the raw response text; extracting and
// parsing JSON from that text is the caller's concern.
type ItineraryGenerator interface {
	// Name returns the backend's unique identifier (e.g., "grok").
	Name() string

	// Generate sends the prompt to the backend and returns the raw
	// response text. Errors are wrapped in a ProviderError.
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// FlightProvider is the port implemented by flight-search backends.
type FlightProvider interface {
	// Name returns the provider's unique identifier (e.g., "amadeus").
	Name() string

	// Search queries the provider and returns normalized flight offers.
	// Errors are wrapped in a ProviderError.
	Search(ctx context.Context, query FlightQuery) ([]FlightOffer, error)
}
