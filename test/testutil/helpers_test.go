package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestJSON(t *testing.T) {
	data := LoadTestJSON(t, "amadeus_flight_offers.json")
	require.NotEmpty(t, data)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Contains(t, payload, "data")
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2025-06-01")
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), parsed)
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)
}
