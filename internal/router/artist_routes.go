package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/handler"
	"github.com/iliyamo/artist-directory/internal/middleware"
)

// RegisterArtist registers ARTIST-scoped endpoints under /v1/dashboard.
// All routes require a valid JWT and ARTIST role; the handler locates
// the profile through the authenticated account, so no artist id is
// taken from the request.
func RegisterArtist(e *echo.Echo, d *handler.DashboardHandler, jwtSecret string) {
	g := e.Group(
		"/v1/dashboard",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleArtist),
	)

	g.GET("", d.GetDashboard)
	g.POST("/profile", d.CreateProfile)
	g.PUT("/profile", d.UpdateProfile)
	g.GET("/bookings", d.ListBookings)
}
