// Package domain contains the core business entities and rules for the travel
// planning system. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BudgetTier is the traveler's budget level for the trip.
type BudgetTier string

// Available budget tiers.
const (
	BudgetTierBudget   BudgetTier = "budget"
	BudgetTierModerate BudgetTier = "moderate"
	BudgetTierPremium  BudgetTier = "premium"
	BudgetTierLuxury   BudgetTier = "luxury"
)

// IsValid checks if the budget tier is a valid value.
func (b BudgetTier) IsValid() bool {
	switch b {
	case BudgetTierBudget, BudgetTierModerate, BudgetTierPremium, BudgetTierLuxury:
		return true
	default:
		return false
	}
}

// Pace is the preferred intensity of the daily schedule.
type Pace string

// Available pace values.
const (
	PaceRelaxed  Pace = "relaxed"
	PaceBalanced Pace = "balanced"
	PaceIntense  Pace = "intense"
)

// IsValid checks if the pace is a valid value.
func (p Pace) IsValid() bool {
	switch p {
	case PaceRelaxed, PaceBalanced, PaceIntense:
		return true
	default:
		return false
	}
}

// TripRequest defines the parameters for an itinerary generation request.
// It is immutable once submitted; each request is constructed fresh and
// discarded after the response is rendered.
type TripRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "SFO")
	Origin string `json:"origin"`

	// Destination is the IATA code of the destination airport (e.g., "CDG")
	Destination string `json:"destination"`

	// StartDate is the trip start date in YYYY-MM-DD format
	StartDate string `json:"start_date"`

	// EndDate is the trip end date in YYYY-MM-DD format
	EndDate string `json:"end_date"`

	// Travelers is the number of travelers (1-9, default: 1)
	Travelers int `json:"travelers"`

	// Budget is the budget tier: budget, moderate, premium, or luxury (default: moderate)
	Budget BudgetTier `json:"budget"`

	// Pace is the preferred pace: relaxed, balanced, or intense (default: balanced)
	Pace Pace `json:"pace"`

	// Interests is a set of free-text interest tags (e.g., "food", "history")
	Interests []string `json:"interests,omitempty"`

	// Currency is the ISO 4217 currency code for cost estimates
	Currency string `json:"currency"`
}

// iataCodeRegex matches valid IATA airport codes (3 uppercase letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// tripDateRegex matches dates in YYYY-MM-DD format.
var tripDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// currencyCodeRegex matches ISO 4217-like currency codes (3 uppercase letters).
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate checks if the trip request is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (r *TripRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(r.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.Origin)
	}

	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(r.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.Destination)
	}

	if r.Origin == r.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	start, err := r.validateDate("start_date", r.StartDate)
	if err != nil {
		return err
	}
	end, err := r.validateDate("end_date", r.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidRequest)
	}

	if r.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidRequest)
	}
	if r.Travelers > 9 {
		return fmt.Errorf("%w: travelers cannot exceed 9", ErrInvalidRequest)
	}

	if !r.Budget.IsValid() {
		return fmt.Errorf("%w: budget must be one of: budget, moderate, premium, luxury; got %q", ErrInvalidRequest, r.Budget)
	}
	if !r.Pace.IsValid() {
		return fmt.Errorf("%w: pace must be one of: relaxed, balanced, intense; got %q", ErrInvalidRequest, r.Pace)
	}

	if r.Currency != "" && !currencyCodeRegex.MatchString(r.Currency) {
		return fmt.Errorf("%w: currency must be a 3-letter ISO 4217 code, got %q", ErrInvalidRequest, r.Currency)
	}

	return nil
}

// validateDate checks a single date field for format and calendar validity.
func (r *TripRequest) validateDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !tripDateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return t, nil
}

// SetDefaults applies default values to empty optional fields and normalizes
// airport and currency codes to upper case.
func (r *TripRequest) SetDefaults(defaultCurrency string) {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))

	if r.Travelers == 0 {
		r.Travelers = 1
	}
	if r.Budget == "" {
		r.Budget = BudgetTierModerate
	}
	if r.Pace == "" {
		r.Pace = PaceBalanced
	}
	if r.Currency == "" {
		r.Currency = defaultCurrency
	}
}
