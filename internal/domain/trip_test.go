package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTripRequest returns a request that passes validation.
func validTripRequest() TripRequest {
	return TripRequest{
		Origin:      "SFO",
		Destination: "CDG",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-08",
		Travelers:   2,
		Budget:      BudgetTierModerate,
		Pace:        PaceBalanced,
		Interests:   []string{"food", "history"},
		Currency:    "USD",
	}
}

func TestTripRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*TripRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			modify: func(r *TripRequest) {},
		},
		{
			name:    "missing origin",
			modify:  func(r *TripRequest) { r.Origin = "" },
			wantErr: "origin is required",
		},
		{
			name:    "lowercase origin rejected",
			modify:  func(r *TripRequest) { r.Origin = "sfo" },
			wantErr: "IATA code",
		},
		{
			name:    "origin equals destination",
			modify:  func(r *TripRequest) { r.Destination = "SFO" },
			wantErr: "must be different",
		},
		{
			name:    "bad start date format",
			modify:  func(r *TripRequest) { r.StartDate = "06/01/2025" },
			wantErr: "YYYY-MM-DD",
		},
		{
			name:    "impossible calendar date",
			modify:  func(r *TripRequest) { r.EndDate = "2025-02-30" },
			wantErr: "not a valid date",
		},
		{
			name:    "end before start",
			modify:  func(r *TripRequest) { r.EndDate = "2025-05-01" },
			wantErr: "must not be before",
		},
		{
			name:    "zero travelers",
			modify:  func(r *TripRequest) { r.Travelers = 0 },
			wantErr: "at least 1",
		},
		{
			name:    "too many travelers",
			modify:  func(r *TripRequest) { r.Travelers = 10 },
			wantErr: "cannot exceed 9",
		},
		{
			name:    "unknown budget tier",
			modify:  func(r *TripRequest) { r.Budget = "extravagant" },
			wantErr: "budget must be one of",
		},
		{
			name:    "unknown pace",
			modify:  func(r *TripRequest) { r.Pace = "frantic" },
			wantErr: "pace must be one of",
		},
		{
			name:    "bad currency code",
			modify:  func(r *TripRequest) { r.Currency = "dollars" },
			wantErr: "ISO 4217",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTripRequest()
			tt.modify(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTripRequestSetDefaults(t *testing.T) {
	req := TripRequest{
		Origin:      " sfo ",
		Destination: "cdg",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-08",
	}
	req.SetDefaults("USD")

	assert.Equal(t, "SFO", req.Origin)
	assert.Equal(t, "CDG", req.Destination)
	assert.Equal(t, 1, req.Travelers)
	assert.Equal(t, BudgetTierModerate, req.Budget)
	assert.Equal(t, PaceBalanced, req.Pace)
	assert.Equal(t, "USD", req.Currency)
}

func TestTripRequestSetDefaultsKeepsExplicitValues(t *testing.T) {
	req := validTripRequest()
	req.Currency = "eur"
	req.SetDefaults("USD")

	assert.Equal(t, 2, req.Travelers)
	assert.Equal(t, "EUR", req.Currency)
}
