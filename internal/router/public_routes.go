package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/handler"
)

// RegisterPublic registers the unauthenticated surface: catalog
// browsing, artist profiles, the application form and booking
// requests. The cache middleware wraps only the catalog and filter
// listings; the profile route stays uncached because every hit must
// count a visit. The rate limiter wraps the public write endpoints.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, b *handler.BookingHandler, cache, limit echo.MiddlewareFunc) {
	// Catalog list with genre/city filters and pagination.
	e.GET("/v1/artists", p.ListArtists, cache)
	// Distinct genres and cities for filter dropdowns.
	e.GET("/v1/artists/filters", p.GetFilterOptions, cache)
	// One public profile by slug. Counts a visit on every request.
	e.GET("/v1/artists/:slug", p.GetArtist)

	// Public application form. The profile goes live immediately.
	e.POST("/v1/artists", p.Apply, limit)
	// Booking request: one row stored, one notification email queued.
	e.POST("/v1/bookings", b.Create, limit)
}
