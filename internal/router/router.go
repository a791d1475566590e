package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/handler"
	"github.com/iliyamo/artist-directory/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check,
// used by load balancers and monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware. Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotating refresh: the presented refresh token is revoked and a
	// fresh pair is issued.
	g.POST("/refresh", a.Refresh)
	// Non-rotating variant: issues a new access token only.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout takes the refresh token in the body, no JWT required.
	g.POST("/logout", a.Logout)

	auth := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleArtist, handler.RoleAdmin),
	)
	auth.GET("/me", a.Me)
}
