package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-planner/ai-travel-planner/internal/domain"
)

const tokenResponse = `{"access_token": "test-token", "expires_in": 1799, "token_type": "Bearer"}`

const offersResponse = `{
	"data": [
		{
			"id": "1",
			"price": {"total": "842.50", "currency": "USD"},
			"itineraries": [
				{
					"duration": "PT11H15M",
					"segments": [
						{
							"departure": {"iataCode": "SFO", "at": "2025-06-01T09:00:00"},
							"arrival": {"iataCode": "CDG", "at": "2025-06-02T06:15:00"},
							"carrierCode": "AF",
							"number": "84"
						}
					]
				}
			]
		}
	]
}`

func testQuery() domain.FlightQuery {
	return domain.FlightQuery{
		Origin:        "SFO",
		Destination:   "CDG",
		DepartureDate: "2025-06-01",
		ReturnDate:    "2025-06-08",
		Adults:        2,
		Currency:      "USD",
		MaxResults:    10,
	}
}

// newTestAdapter starts a fake Amadeus API serving the token endpoint and the
// given flight-offers handler.
func newTestAdapter(t *testing.T, offersHandler http.HandlerFunc) (*Adapter, *int32) {
	t.Helper()

	var tokenCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "test-key", r.FormValue("client_id"))
		assert.Equal(t, "test-secret", r.FormValue("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tokenResponse))
	})
	mux.HandleFunc(flightOffersPath, offersHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	adapter, err := NewAdapter(ClientConfig{
		APIKey:    "test-key",
		APISecret: "test-secret",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)
	return adapter, &tokenCalls
}

// TestAdapter_Name tests the Name method.
func TestAdapter_Name(t *testing.T) {
	adapter, err := NewAdapter(ClientConfig{APIKey: "k", APISecret: "s"})
	require.NoError(t, err)
	assert.Equal(t, "amadeus", adapter.Name())
}

// TestNewAdapter_RequiresCredentials tests credential validation.
func TestNewAdapter_RequiresCredentials(t *testing.T) {
	_, err := NewAdapter(ClientConfig{APIKey: "k"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

// TestAdapter_Search tests a successful search round trip.
func TestAdapter_Search(t *testing.T) {
	adapter, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "SFO", q.Get("originLocationCode"))
		assert.Equal(t, "CDG", q.Get("destinationLocationCode"))
		assert.Equal(t, "2025-06-01", q.Get("departureDate"))
		assert.Equal(t, "2025-06-08", q.Get("returnDate"))
		assert.Equal(t, "2", q.Get("adults"))
		assert.Equal(t, "USD", q.Get("currencyCode"))
		assert.Equal(t, "10", q.Get("max"))
		assert.Empty(t, q.Get("nonStop"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(offersResponse))
	})

	offers, err := adapter.Search(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "842.50", offers[0].Price)
	require.NotNil(t, offers[0].Outbound)
	assert.Equal(t, "SFO", offers[0].Outbound.DepartureAirport)
}

// TestAdapter_SearchReusesToken tests that the token is fetched once across
// searches.
func TestAdapter_SearchReusesToken(t *testing.T) {
	adapter, tokenCalls := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	for i := 0; i < 3; i++ {
		_, err := adapter.Search(context.Background(), testQuery())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(tokenCalls))
}

// TestAdapter_SearchNonStopParam tests that nonStop is sent only when set.
func TestAdapter_SearchNonStopParam(t *testing.T) {
	adapter, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("nonStop"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	query := testQuery()
	query.NonStop = true

	_, err := adapter.Search(context.Background(), query)
	require.NoError(t, err)
}

// TestAdapter_SearchServerErrorIsRetryable tests retryability classification.
func TestAdapter_SearchServerErrorIsRetryable(t *testing.T) {
	adapter, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"errors": [{"status": 502}]}`))
	})

	_, err := adapter.Search(context.Background(), testQuery())
	require.Error(t, err)

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "amadeus", pe.Provider)
	assert.True(t, pe.Retryable)
}

// TestAdapter_SearchClientErrorIsNotRetryable tests 4xx classification.
func TestAdapter_SearchClientErrorIsNotRetryable(t *testing.T) {
	adapter, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors": [{"status": 400, "title": "INVALID DATE"}]}`))
	})

	_, err := adapter.Search(context.Background(), testQuery())
	require.Error(t, err)

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.False(t, pe.Retryable)
}

// TestAdapter_SearchTokenFailure tests that an auth failure surfaces as a
// provider error.
func TestAdapter_SearchTokenFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid_client"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	adapter, err := NewAdapter(ClientConfig{
		APIKey:    "bad-key",
		APISecret: "bad-secret",
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	_, err = adapter.Search(context.Background(), testQuery())
	require.Error(t, err)
	assert.True(t, domain.IsProviderError(err))
}

// TestBuildParams_AdultsFloor tests that adults is floored at 1.
func TestBuildParams_AdultsFloor(t *testing.T) {
	query := testQuery()
	query.Adults = 0

	params := buildParams(query)
	assert.Equal(t, "1", params.Get("adults"))
}
