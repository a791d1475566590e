package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/handler"
	"github.com/iliyamo/artist-directory/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleAdmin),
	)

	// ---- Roster ----
	g.GET("/artists", a.ListArtists)

	// ---- Premium management ----
	g.POST("/artists/:id/premium", a.ActivatePremium)
	g.DELETE("/artists/:id/premium", a.CancelPremium)
}
