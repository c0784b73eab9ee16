package usecase

import (
	"fmt"
	"strings"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

// itinerarySchemaHint tells the model exactly which JSON shape to produce.
// It is appended to the system prompt for every backend.
const itinerarySchemaHint = "Return strict JSON with keys: destination, total_days, " +
	"daily_plan (array of {day, summary, activities}), " +
	"estimated_cost (object with currency and total), tips (array of strings)."

// BuildPrompt renders a trip request into the system/user prompt pair sent to
// the itinerary generator. The request is expected to be validated and
// defaulted; the prompt embeds the currency so the model prices in it.
func BuildPrompt(req domain.TripRequest) domain.Prompt {
	system := fmt.Sprintf(
		"You are an expert travel planner. Create practical, local-savvy itineraries. "+
			"Use realistic travel times, cluster nearby activities, and balance mornings/afternoons/evenings. "+
			"Output currency: %s. %s",
		req.Currency, itinerarySchemaHint,
	)

	var b strings.Builder
	b.WriteString("Plan a trip with these details:\n")
	fmt.Fprintf(&b, "- Origin: %s\n", req.Origin)
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Dates: %s to %s\n", req.StartDate, req.EndDate)
	fmt.Fprintf(&b, "- Travelers: %d\n", req.Travelers)
	fmt.Fprintf(&b, "- Budget: %s\n", req.Budget)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&b, "- Preferred pace: %s\n", req.Pace)
	b.WriteString("Return only JSON.")

	return domain.Prompt{
		System: system,
		User:   b.String(),
	}
}
