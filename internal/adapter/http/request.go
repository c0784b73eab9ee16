// Package http provides the HTTP handler layer for the travel planner API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"
)

// GenerateItineraryRequest represents the request body for itinerary generation.
type GenerateItineraryRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "SFO")
	Origin string `json:"origin"`

	// Destination is the IATA code of the destination airport (e.g., "CDG")
	Destination string `json:"destination"`

	// StartDate is the trip start date in YYYY-MM-DD format
	StartDate string `json:"startDate"`

	// EndDate is the trip end date in YYYY-MM-DD format
	EndDate string `json:"endDate"`

	// Travelers is the number of travelers (1-9, default: 1)
	Travelers int `json:"travelers,omitempty"`

	// Budget is the budget tier: budget, moderate, premium, luxury (default: moderate)
	Budget string `json:"budget,omitempty"`

	// Pace is the preferred pace: relaxed, balanced, intense (default: balanced)
	Pace string `json:"pace,omitempty"`

	// Interests is a list of free-text interest tags (e.g., ["food", "history"])
	Interests []string `json:"interests,omitempty"`

	// Currency is the ISO 4217 currency code for cost estimates
	Currency string `json:"currency,omitempty"`
}

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "SFO")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "CDG")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date; empty means one-way
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult travelers (1-9, default: 1)
	Adults int `json:"adults,omitempty"`

	// Currency is the ISO 4217 currency code for prices
	Currency string `json:"currency,omitempty"`

	// NonStop restricts the search to direct flights when true
	NonStop bool `json:"nonStop,omitempty"`

	// MaxResults caps the number of offers (1-50, default: 10)
	MaxResults int `json:"maxResults,omitempty"`

	// MaxStops filters offers by stop count: "any", "0", "1", "2+"
	MaxStops string `json:"maxStops,omitempty"`

	// SortBy specifies how to sort results: price_asc, price_desc, duration, departure
	SortBy string `json:"sortBy,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid budget tiers.
var validBudgets = map[string]bool{
	"budget":   true,
	"moderate": true,
	"premium":  true,
	"luxury":   true,
	"":         true, // Empty is valid (defaults to moderate)
}

// Valid pace values.
var validPaces = map[string]bool{
	"relaxed":  true,
	"balanced": true,
	"intense":  true,
	"":         true, // Empty is valid (defaults to balanced)
}

// Valid stop-filter selections.
var validMaxStops = map[string]bool{
	"any": true,
	"0":   true,
	"1":   true,
	"2":   true,
	"2+":  true,
	"":    true, // Empty is valid (defaults to any)
}

// Valid sort options.
var validSortOptions = map[string]bool{
	"price_asc":  true,
	"price_desc": true,
	"duration":   true,
	"departure":  true,
	"":           true, // Empty is valid (defaults to price_asc)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the itinerary request and returns any validation errors.
// Deep field validation lives in the domain layer; the checks here catch the
// shapes a client can get wrong before a use case ever runs.
func (r *GenerateItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirport(errs, "origin", &r.Origin)
	validateAirport(errs, "destination", &r.Destination)
	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	start := validateDate(errs, "startDate", r.StartDate)
	end := validateDate(errs, "endDate", r.EndDate)
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs.Add("endDate", "endDate must not be before startDate")
	}

	if r.Travelers < 0 || r.Travelers > 9 {
		errs.Add("travelers", "travelers must be between 1 and 9")
	}
	if !validBudgets[strings.ToLower(r.Budget)] {
		errs.Add("budget", "budget must be one of: budget, moderate, premium, luxury")
	}
	if !validPaces[strings.ToLower(r.Pace)] {
		errs.Add("pace", "pace must be one of: relaxed, balanced, intense")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the flight search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirport(errs, "origin", &r.Origin)
	validateAirport(errs, "destination", &r.Destination)
	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	departure := validateDate(errs, "departureDate", r.DepartureDate)
	if r.ReturnDate != "" {
		ret := validateDate(errs, "returnDate", r.ReturnDate)
		if !departure.IsZero() && !ret.IsZero() && ret.Before(departure) {
			errs.Add("returnDate", "returnDate must not be before departureDate")
		}
	}

	if r.Adults < 0 || r.Adults > 9 {
		errs.Add("adults", "adults must be between 1 and 9")
	}
	if r.MaxResults < 0 || r.MaxResults > 50 {
		errs.Add("maxResults", "maxResults must be between 1 and 50")
	}
	if !validMaxStops[strings.ToLower(r.MaxStops)] {
		errs.Add("maxStops", "maxStops must be one of: any, 0, 1, 2+")
	}
	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: price_asc, price_desc, duration, departure")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateAirport checks and normalizes a single IATA code field.
func validateAirport(errs *ValidationErrors, field string, value *string) {
	if *value == "" {
		errs.Add(field, field+" is required")
		return
	}

	code := strings.ToUpper(strings.TrimSpace(*value))
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return
	}
	*value = code // Normalize to uppercase
}

// validateDate checks a single date field and returns the parsed value, or
// the zero time when invalid.
func validateDate(errs *ValidationErrors, field, value string) time.Time {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}
	}
	return t
}
