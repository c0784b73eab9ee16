package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// FilterByStops returns the offers whose legs all pass the stop ceiling.
// StopCeilingAny returns the input slice unchanged.
func FilterByStops(offers []domain.FlightOffer, ceiling domain.StopCeiling) []domain.FlightOffer {
	if ceiling == domain.StopCeilingAny {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if ceiling.AllowsOffer(offer) {
			result = append(result, offer)
		}
	}
	return result
}

// SortOffers returns a sorted copy of the offers. All sorts are stable, so
// offers that compare equal keep their original relative order.
func SortOffers(offers []domain.FlightOffer, sortBy domain.SortOption) []domain.FlightOffer {
	if len(offers) <= 1 {
		return offers
	}

	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)

	switch sortBy {
	case domain.SortByPriceDesc:
		sortByPrice(result, true)
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return outboundDuration(result[i]) < outboundDuration(result[j])
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return outboundDeparture(result[i]) < outboundDeparture(result[j])
		})
	case domain.SortByPriceAsc:
		fallthrough
	default:
		sortByPrice(result, false)
	}

	return result
}

// sortByPrice sorts offers by numeric price in place. Offers whose price
// cannot be parsed (e.g., "N/A") are unsortable: they are placed after all
// sortable offers, keeping their original relative order.
func sortByPrice(offers []domain.FlightOffer, descending bool) {
	sortable := make([]domain.FlightOffer, 0, len(offers))
	unsortable := make([]domain.FlightOffer, 0)

	for _, offer := range offers {
		if _, ok := priceValue(offer); ok {
			sortable = append(sortable, offer)
		} else {
			unsortable = append(unsortable, offer)
		}
	}

	sort.SliceStable(sortable, func(i, j int) bool {
		pi, _ := priceValue(sortable[i])
		pj, _ := priceValue(sortable[j])
		if descending {
			return pi > pj
		}
		return pi < pj
	})

	copy(offers, sortable)
	copy(offers[len(sortable):], unsortable)
}

// priceValue parses an offer's price string as a decimal after removing
// thousands separators. The second return is false when the price is not
// numeric.
func priceValue(offer domain.FlightOffer) (float64, bool) {
	raw := strings.ReplaceAll(offer.Price, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// outboundDuration returns the outbound leg's ISO 8601 duration string.
// Comparison over these strings is lexicographic, which is a known
// simplification rather than true chronological ordering.
func outboundDuration(offer domain.FlightOffer) string {
	if offer.Outbound == nil {
		return ""
	}
	return offer.Outbound.Duration
}

// outboundDeparture returns the outbound leg's departure timestamp string.
func outboundDeparture(offer domain.FlightOffer) string {
	if offer.Outbound == nil {
		return ""
	}
	return offer.Outbound.DepartureTime
}
