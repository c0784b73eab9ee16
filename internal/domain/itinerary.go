package domain

import "encoding/json"

// Itinerary day count bounds. Model output outside this range is clamped,
// not rejected; out-of-range values are a safety bound, not an error.
const (
	MinItineraryDays = 1
	MaxItineraryDays = 30
)

// ClampDays bounds a day count into [MinItineraryDays, MaxItineraryDays].
func ClampDays(days int) int {
	if days < MinItineraryDays {
		return MinItineraryDays
	}
	if days > MaxItineraryDays {
		return MaxItineraryDays
	}
	return days
}

// Itinerary is the day-by-day generated travel plan. It is produced once per
// generation request and never mutated after parsing, only clamped.
type Itinerary struct {
	// Destination is the trip destination as named by the model
	Destination string `json:"destination"`

	// TotalDays is the number of days covered, clamped to [1,30]
	TotalDays int `json:"total_days"`

	// DailyPlan is the ordered sequence of per-day plans
	DailyPlan []DayPlan `json:"daily_plan"`

	// EstimatedCost is the model's total cost estimate
	EstimatedCost EstimatedCost `json:"estimated_cost"`

	// Tips is an ordered list of travel tips
	Tips []string `json:"tips"`
}

// IsEmpty reports whether the itinerary carries no usable content.
// An empty itinerary is the degraded "no itinerary available" result,
// not an error.
func (i *Itinerary) IsEmpty() bool {
	return i.Destination == "" && i.TotalDays == 0 && len(i.DailyPlan) == 0 &&
		len(i.Tips) == 0 && i.EstimatedCost.Currency == "" && len(i.EstimatedCost.Total) == 0
}

// DayPlan is the plan for a single day of the trip.
type DayPlan struct {
	// Day is the 1-based day number
	Day int `json:"day"`

	// Summary is a one-line description of the day
	Summary string `json:"summary"`

	// Activities is the ordered list of activities for the day
	Activities []Activity `json:"activities"`
}

// EstimatedCost is the model's cost estimate for the whole trip.
type EstimatedCost struct {
	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// Total is the estimated total, kept as a string since models emit
	// both numbers and ranges like "1200-1500"
	Total json.RawMessage `json:"total,omitempty"`
}

// Activity is one entry in a day plan. Models emit activities either as a
// plain string or as an object with name/time fields (sometimes using the
// legacy activity/duration key names), so unmarshalling accepts both shapes.
type Activity struct {
	// Name is the activity description
	Name string `json:"name"`

	// Time is an optional time hint (e.g., "09:00" or "morning")
	Time string `json:"time,omitempty"`
}

// UnmarshalJSON accepts both the plain-string and the object form.
func (a *Activity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Name = s
		a.Time = ""
		return nil
	}

	var obj struct {
		Name     string `json:"name"`
		Activity string `json:"activity"`
		Time     string `json:"time"`
		Duration string `json:"duration"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	a.Name = obj.Name
	if a.Name == "" {
		a.Name = obj.Activity
	}
	a.Time = obj.Time
	if a.Time == "" {
		a.Time = obj.Duration
	}
	return nil
}
