package mock

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// Provider is a configurable mock implementation of domain.FlightProvider.
// It supports configurable delays, errors, and offers for testing
// various scenarios including timeouts and provider failures.
type Provider struct {
	name      string
	offers    []domain.FlightOffer
	err       error
	delay     time.Duration
	callCount int
	lastQuery domain.FlightQuery
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name: name,
	}
}

// WithOffers configures the provider to return the given offers.
func (p *Provider) WithOffers(offers []domain.FlightOffer) *Provider {
	p.offers = offers
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.FlightProvider.Search.
// It respects context cancellation, applies the configured delay,
// and returns the configured offers or error.
func (p *Provider) Search(ctx context.Context, query domain.FlightQuery) ([]domain.FlightOffer, error) {
	p.mu.Lock()
	p.callCount++
	p.lastQuery = query
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.offers, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastQuery returns the query from the most recent Search call.
func (p *Provider) LastQuery() domain.FlightQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastQuery
}

// Ensure Provider implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Provider)(nil)

// SampleOffers returns a slice of sample flight offers for testing.
// Offers are priced in ascending order of index and alternate between
// nonstop and one-stop outbound legs.
func SampleOffers(count int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, count)

	for i := 0; i < count; i++ {
		departure := time.Date(2025, 6, 1, 8+i, 0, 0, 0, time.UTC)
		arrival := departure.Add(11*time.Hour + 15*time.Minute)

		offers[i] = domain.FlightOffer{
			ID:       strconv.Itoa(i + 1),
			Price:    strconv.FormatFloat(400+float64(i)*75, 'f', 2, 64),
			Currency: "USD",
			Outbound: &domain.Leg{
				DepartureAirport: "SFO",
				DepartureTime:    departure.Format("2006-01-02T15:04:05"),
				ArrivalAirport:   "CDG",
				ArrivalTime:      arrival.Format("2006-01-02T15:04:05"),
				Duration:         "PT11H15M",
				Stops:            i % 2,
				Carriers:         []string{"AF"},
			},
		}
	}

	return offers
}
