package domain

// SortOption defines the available sorting options for flight offers.
type SortOption string

// Available sort options.
const (
	// SortByPriceAsc sorts by price ascending, cheapest first (default)
	SortByPriceAsc SortOption = "price_asc"

	// SortByPriceDesc sorts by price descending, most expensive first
	SortByPriceDesc SortOption = "price_desc"

	// SortByDuration sorts by outbound duration string, shortest first.
	// Comparison is lexicographic over the ISO 8601 duration, which is a
	// known simplification rather than true chronological ordering.
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by outbound departure timestamp, earliest first
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPriceAsc, SortByPriceDesc, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPriceAsc if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByPriceAsc
}

// StopCeiling is the maximum number of stops a leg may have for an offer to
// pass filtering. StopCeilingAny disables the filter entirely.
type StopCeiling int

// StopCeilingAny disables stop-count filtering.
const StopCeilingAny StopCeiling = -1

// ParseStopCeiling converts a user selection to a StopCeiling.
// Recognized values: "" / "any" (unbounded), "0", "1", "2", and "2+"
// (meaning ceiling 2). Anything else is treated as unbounded.
func ParseStopCeiling(s string) StopCeiling {
	switch s {
	case "0":
		return StopCeiling(0)
	case "1":
		return StopCeiling(1)
	case "2", "2+":
		return StopCeiling(2)
	default:
		return StopCeilingAny
	}
}

// Allows reports whether a leg with the given stop count passes the ceiling.
func (c StopCeiling) Allows(stops int) bool {
	return c == StopCeilingAny || stops <= int(c)
}

// AllowsOffer reports whether an offer passes the ceiling: the outbound leg
// must pass (a missing outbound counts as MissingLegStops), and the return
// leg must pass when present.
func (c StopCeiling) AllowsOffer(offer FlightOffer) bool {
	if c == StopCeilingAny {
		return true
	}
	if !c.Allows(offer.OutboundStops()) {
		return false
	}
	if offer.Return != nil && !c.Allows(offer.Return.Stops) {
		return false
	}
	return true
}
