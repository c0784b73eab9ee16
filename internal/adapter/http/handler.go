package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travel-planner/ai-travel-planner/internal/adapter/http/response"
	"github.com/travel-planner/ai-travel-planner/internal/domain"
	"github.com/travel-planner/ai-travel-planner/internal/usecase"
)

// ItineraryHandler handles HTTP requests for itinerary generation.
type ItineraryHandler struct {
	useCase usecase.PlannerUseCase
}

// NewItineraryHandler creates a new ItineraryHandler with the given use case.
func NewItineraryHandler(uc usecase.PlannerUseCase) *ItineraryHandler {
	return &ItineraryHandler{
		useCase: uc,
	}
}

// GenerateItinerary handles POST /api/v1/itineraries/generate
//
// @Summary Generate a travel itinerary
// @Description Generate a day-by-day itinerary for a trip using the configured LLM backend
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} domain.Itinerary
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Generator unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/generate [post]
func (h *ItineraryHandler) GenerateItinerary(c echo.Context) error {
	var req GenerateItineraryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	itinerary, err := h.useCase.GenerateItinerary(c.Request().Context(), ToDomainTripRequest(&req))
	if err != nil {
		return handleError(c, err)
	}

	return response.Itinerary(c, itinerary)
}

// FlightHandler handles HTTP requests for flight search.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search live flight offers, filtered by stop count and sorted
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search parameters"
// @Success 200 {object} FlightSearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainFlightQuery(&req), ToSearchOptions(&req))
	if err != nil {
		return handleError(c, err)
	}

	return response.SearchResults(c, ToFlightSearchResponseDTO(result))
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func handleError(c echo.Context, err error) error {
	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrProviderTimeout) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Any other upstream failure
	if domain.IsProviderError(err) || errors.Is(err, domain.ErrProviderUnavailable) {
		return response.ProviderUnavailable(c)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}
