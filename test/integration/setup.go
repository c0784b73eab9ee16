// Package integration provides helpers and integration tests for the travel
// planner. Integration tests verify that components work together correctly,
// including HTTP handlers, use cases, and provider adapters.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travel-planner/ai-travel-planner/internal/adapter/http"
	"github.com/travel-planner/ai-travel-planner/internal/domain"
	"github.com/travel-planner/ai-travel-planner/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer creates a test server wiring real use cases around the given
// generator and provider doubles.
func NewTestServer(generator domain.ItineraryGenerator, provider domain.FlightProvider) *TestServer {
	plannerUseCase := usecase.NewPlannerUseCase(generator, nil, nil)
	searchUseCase := usecase.NewFlightSearchUseCase(provider, nil, nil)
	return NewTestServerWithUseCases(plannerUseCase, searchUseCase)
}

// NewTestServerWithUseCases creates a test server around pre-built use cases.
// Use this when a test needs custom timeouts or currencies.
func NewTestServerWithUseCases(planner usecase.PlannerUseCase, search usecase.FlightSearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpAdapter.RegisterRoutes(e,
		httpAdapter.NewItineraryHandler(planner),
		httpAdapter.NewFlightHandler(search))

	return &TestServer{Echo: e}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// GenerateRequest makes an itinerary generation request.
func (ts *TestServer) GenerateRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/generate",
		Body:   body,
	})
}

// SearchRequest makes a flight search request.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseItinerary parses the response body as an Itinerary.
func (r *Response) ParseItinerary() (*domain.Itinerary, error) {
	var itinerary domain.Itinerary
	if err := json.Unmarshal(r.Body, &itinerary); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// ParseSearchResponse parses the response body as a flight search response.
func (r *Response) ParseSearchResponse() (*httpAdapter.FlightSearchResponseDTO, error) {
	var resp httpAdapter.FlightSearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// GenerateRequestBody is a helper struct for building itinerary request bodies.
type GenerateRequestBody struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Travelers   int      `json:"travelers,omitempty"`
	Budget      string   `json:"budget,omitempty"`
	Pace        string   `json:"pace,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Currency    string   `json:"currency,omitempty"`
}

// DefaultGenerateRequest returns a valid itinerary request body for testing.
func DefaultGenerateRequest() GenerateRequestBody {
	return GenerateRequestBody{
		Origin:      "SFO",
		Destination: "CDG",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-08",
		Travelers:   2,
		Budget:      "moderate",
		Pace:        "balanced",
		Interests:   []string{"food", "museums"},
	}
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults,omitempty"`
	Currency      string `json:"currency,omitempty"`
	NonStop       bool   `json:"nonStop,omitempty"`
	MaxResults    int    `json:"maxResults,omitempty"`
	MaxStops      string `json:"maxStops,omitempty"`
	SortBy        string `json:"sortBy,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "SFO",
		Destination:   "CDG",
		DepartureDate: "2025-06-01",
		ReturnDate:    "2025-06-08",
		Adults:        1,
	}
}
