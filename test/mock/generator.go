// Package mock provides test doubles for the travel planner.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, canned responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// Generator is a configurable mock implementation of domain.ItineraryGenerator.
// It supports configurable delays, errors, and responses for testing
// timeout behavior and degraded-output handling.
type Generator struct {
	name      string
	response  string
	err       error
	delay     time.Duration
	callCount int
	lastCall  domain.Prompt
	mu        sync.Mutex
}

// NewGenerator creates a new mock generator with the given backend name.
// The generator is configured using the builder pattern methods.
func NewGenerator(name string) *Generator {
	return &Generator{
		name: name,
	}
}

// WithResponse configures the generator to return the given raw text.
func (g *Generator) WithResponse(response string) *Generator {
	g.response = response
	return g
}

// WithError configures the generator to return the given error.
func (g *Generator) WithError(err error) *Generator {
	g.err = err
	return g
}

// WithDelay configures the generator to wait before responding.
// This is useful for testing timeout behavior.
func (g *Generator) WithDelay(d time.Duration) *Generator {
	g.delay = d
	return g
}

// Name returns the backend name.
func (g *Generator) Name() string {
	return g.name
}

// Generate implements domain.ItineraryGenerator.Generate.
// It respects context cancellation, applies the configured delay,
// and returns the configured response or error.
func (g *Generator) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	g.mu.Lock()
	g.callCount++
	g.lastCall = prompt
	g.mu.Unlock()

	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(g.delay):
		}
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if g.err != nil {
		return "", g.err
	}

	return g.response, nil
}

// CallCount returns the number of times Generate was called.
func (g *Generator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callCount
}

// LastPrompt returns the prompt from the most recent Generate call.
func (g *Generator) LastPrompt() domain.Prompt {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastCall
}

// Ensure Generator implements domain.ItineraryGenerator at compile time.
var _ domain.ItineraryGenerator = (*Generator)(nil)

// SampleItineraryJSON returns a well-formed itinerary document as the
// model would emit it.
func SampleItineraryJSON() string {
	return `{
		"destination": "Paris",
		"total_days": 3,
		"daily_plan": [
			{"day": 1, "summary": "Arrival and Le Marais", "activities": ["Check in", {"name": "Walk Le Marais", "time": "afternoon"}]},
			{"day": 2, "summary": "Museums", "activities": [{"name": "Louvre", "time": "09:00"}]},
			{"day": 3, "summary": "Day trip", "activities": ["Versailles"]}
		],
		"estimated_cost": {"currency": "USD", "total": "1200-1500"},
		"tips": ["Buy a carnet of metro tickets"]
	}`
}
