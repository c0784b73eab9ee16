package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// flightOffersPath is the Amadeus flight-offers search endpoint.
const flightOffersPath = "/v2/shopping/flight-offers"

// Adapter implements domain.FlightProvider using the Amadeus API.
type Adapter struct {
	client *Client
}

// NewAdapter creates an Amadeus flight provider.
func NewAdapter(cfg ClientConfig) (*Adapter, error) {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingAPIKey, ProviderName)
	}
	return &Adapter{client: NewClient(cfg)}, nil
}

// Name implements domain.FlightProvider.Name.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.FlightProvider.Search.
func (a *Adapter) Search(ctx context.Context, query domain.FlightQuery) ([]domain.FlightOffer, error) {
	body, err := a.client.get(ctx, flightOffersPath, buildParams(query))
	if err != nil {
		return nil, wrapError(err)
	}

	var resp flightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("parse flight offers: %w", err))
	}

	return normalize(resp.Data), nil
}

// buildParams marshals a flight query into the endpoint's query parameters.
// Optional fields are omitted rather than sent empty.
func buildParams(query domain.FlightQuery) url.Values {
	adults := query.Adults
	if adults < 1 {
		adults = 1
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	params.Set("adults", strconv.Itoa(adults))
	params.Set("max", strconv.Itoa(query.MaxResults))

	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}
	if query.Currency != "" {
		params.Set("currencyCode", query.Currency)
	}
	if query.NonStop {
		params.Set("nonStop", "true")
	}

	return params
}

// wrapError converts client errors into ProviderErrors, marking timeouts and
// upstream congestion as retryable.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewProviderTimeoutError(ProviderName)
	}

	var apiErr *apiError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 || apiErr.StatusCode >= 500 {
			return domain.NewRetryableProviderError(ProviderName, err)
		}
		return domain.NewProviderError(ProviderName, err)
	}

	return domain.NewProviderError(ProviderName, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
}

// Ensure Adapter implements the port at compile time.
var _ domain.FlightProvider = (*Adapter)(nil)
