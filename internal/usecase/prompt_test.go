package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	req := domain.TripRequest{
		Origin:      "SFO",
		Destination: "CDG",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-08",
		Travelers:   2,
		Budget:      domain.BudgetTierModerate,
		Pace:        domain.PaceBalanced,
		Interests:   []string{"food", "museums"},
		Currency:    "USD",
	}

	prompt := BuildPrompt(req)

	assert.Contains(t, prompt.System, "expert travel planner")
	assert.Contains(t, prompt.System, "Output currency: USD.")
	assert.Contains(t, prompt.System, "destination, total_days, daily_plan")

	assert.Contains(t, prompt.User, "- Origin: SFO")
	assert.Contains(t, prompt.User, "- Destination: CDG")
	assert.Contains(t, prompt.User, "- Dates: 2025-06-01 to 2025-06-08")
	assert.Contains(t, prompt.User, "- Travelers: 2")
	assert.Contains(t, prompt.User, "- Budget: moderate")
	assert.Contains(t, prompt.User, "- Interests: food, museums")
	assert.Contains(t, prompt.User, "- Preferred pace: balanced")
	assert.Contains(t, prompt.User, "Return only JSON.")
}

func TestBuildPromptNoInterests(t *testing.T) {
	req := domain.TripRequest{
		Origin:      "JFK",
		Destination: "NRT",
		StartDate:   "2025-09-10",
		EndDate:     "2025-09-20",
		Travelers:   1,
		Budget:      domain.BudgetTierBudget,
		Pace:        domain.PaceRelaxed,
		Currency:    "JPY",
	}

	prompt := BuildPrompt(req)

	assert.Contains(t, prompt.System, "Output currency: JPY.")
	assert.Contains(t, prompt.User, "- Interests: \n")
}
