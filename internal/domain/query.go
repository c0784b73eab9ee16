package domain

import (
	"fmt"
	"strings"
	"time"
)

// Flight search result bounds.
const (
	DefaultMaxResults = 10
	MaxMaxResults     = 50
)

// FlightQuery defines the parameters for a live flight search. It is the
// flight-facing subset of a trip request plus search-specific knobs.
type FlightQuery struct {
	// Origin is the IATA code of the departure airport (e.g., "SFO")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "CDG")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// ReturnDate is the optional return date in YYYY-MM-DD format;
	// empty means a one-way search
	ReturnDate string `json:"return_date,omitempty"`

	// Adults is the number of adult travelers (default: 1)
	Adults int `json:"adults"`

	// Currency is the optional ISO 4217 currency code for prices
	Currency string `json:"currency,omitempty"`

	// NonStop restricts the provider search to direct flights when true
	NonStop bool `json:"non_stop,omitempty"`

	// MaxResults caps the number of offers requested from the provider
	// (default: 10, maximum: 50)
	MaxResults int `json:"max_results"`
}

// Validate checks if the flight query is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q *FlightQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}

	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
	}

	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if q.DepartureDate == "" {
		return fmt.Errorf("%w: departure_date is required", ErrInvalidRequest)
	}
	if !tripDateRegex.MatchString(q.DepartureDate) {
		return fmt.Errorf("%w: departure_date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.DepartureDate)
	}
	departure, err := time.Parse("2006-01-02", q.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: departure_date is not a valid date: %s", ErrInvalidRequest, q.DepartureDate)
	}

	if q.ReturnDate != "" {
		if !tripDateRegex.MatchString(q.ReturnDate) {
			return fmt.Errorf("%w: return_date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.ReturnDate)
		}
		ret, err := time.Parse("2006-01-02", q.ReturnDate)
		if err != nil {
			return fmt.Errorf("%w: return_date is not a valid date: %s", ErrInvalidRequest, q.ReturnDate)
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: return_date must not be before departure_date", ErrInvalidRequest)
		}
	}

	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if q.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}

	if q.Currency != "" && !currencyCodeRegex.MatchString(q.Currency) {
		return fmt.Errorf("%w: currency must be a 3-letter ISO 4217 code, got %q", ErrInvalidRequest, q.Currency)
	}

	if q.MaxResults < 1 || q.MaxResults > MaxMaxResults {
		return fmt.Errorf("%w: max_results must be between 1 and %d, got %d", ErrInvalidRequest, MaxMaxResults, q.MaxResults)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields and normalizes
// airport and currency codes to upper case.
func (q *FlightQuery) SetDefaults(defaultCurrency string) {
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
	q.Destination = strings.ToUpper(strings.TrimSpace(q.Destination))
	q.Currency = strings.ToUpper(strings.TrimSpace(q.Currency))

	if q.Adults == 0 {
		q.Adults = 1
	}
	if q.Currency == "" {
		q.Currency = defaultCurrency
	}
	if q.MaxResults == 0 {
		q.MaxResults = DefaultMaxResults
	}
}
