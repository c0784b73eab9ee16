package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all travel planner API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, itineraries *ItineraryHandler, flights *FlightHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", flights.Health)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	api := e.Group("/api/v1")

	api.POST("/itineraries/generate", itineraries.GenerateItinerary)
	api.POST("/flights/search", flights.SearchFlights)
}
