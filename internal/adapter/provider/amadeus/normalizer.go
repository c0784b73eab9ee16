package amadeus

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// normalize converts raw offer records to domain FlightOffers. Records that
// do not decode as JSON objects are skipped; missing fields inside a decoded
// record degrade to placeholders instead.
func normalize(records []json.RawMessage) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(records))
	for _, raw := range records {
		offer, ok := normalizeOffer(raw)
		if !ok {
			continue
		}
		result = append(result, offer)
	}
	return result
}

// normalizeOffer converts a single raw offer record to a domain FlightOffer.
// The first itinerary becomes the outbound leg, the second the return leg;
// further itineraries are ignored.
func normalizeOffer(raw json.RawMessage) (domain.FlightOffer, bool) {
	var record offerRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.FlightOffer{}, false
	}

	offer := domain.FlightOffer{
		ID:       record.ID,
		Price:    record.Price.Total,
		Currency: record.Price.Currency,
		Raw:      raw,
	}
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	if offer.Price == "" {
		offer.Price = domain.PriceUnavailable
	}
	if offer.Currency == "" {
		offer.Currency = domain.DefaultCurrency
	}

	if len(record.Itineraries) > 0 {
		offer.Outbound = normalizeLeg(record.Itineraries[0])
	}
	if len(record.Itineraries) > 1 {
		offer.Return = normalizeLeg(record.Itineraries[1])
	}

	return offer, true
}

// normalizeLeg converts an itinerary record to a leg. An itinerary with no
// segments has no usable endpoints and yields nil.
func normalizeLeg(it itineraryRecord) *domain.Leg {
	if len(it.Segments) == 0 {
		return nil
	}

	first := it.Segments[0]
	last := it.Segments[len(it.Segments)-1]

	segments := make([]domain.Segment, 0, len(it.Segments))
	for _, s := range it.Segments {
		segments = append(segments, domain.Segment{
			DepartureAirport: s.Departure.IataCode,
			DepartureTime:    s.Departure.At,
			ArrivalAirport:   s.Arrival.IataCode,
			ArrivalTime:      s.Arrival.At,
			CarrierCode:      s.CarrierCode,
			FlightNumber:     s.Number,
		})
	}

	return &domain.Leg{
		DepartureAirport: first.Departure.IataCode,
		DepartureTime:    first.Departure.At,
		ArrivalAirport:   last.Arrival.IataCode,
		ArrivalTime:      last.Arrival.At,
		Duration:         it.Duration,
		Stops:            len(it.Segments) - 1,
		Carriers:         distinctCarriers(it.Segments),
		Segments:         segments,
	}
}

// distinctCarriers collects the distinct non-empty carrier codes across the
// segments, sorted for deterministic output.
func distinctCarriers(segments []segmentRecord) []string {
	seen := make(map[string]bool, len(segments))
	carriers := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.CarrierCode == "" || seen[s.CarrierCode] {
			continue
		}
		seen[s.CarrierCode] = true
		carriers = append(carriers, s.CarrierCode)
	}
	sort.Strings(carriers)
	return carriers
}
