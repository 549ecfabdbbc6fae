package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/user-auth-service/internal/auth"
	"github.com/iliyamo/user-auth-service/internal/handler"
	"github.com/iliyamo/user-auth-service/internal/middleware"
)

// Register wires all routes onto the provided Echo instance. /register
// and /login are open; /me requires a valid Bearer token, enforced by
// the Authenticate middleware backed by the auth service.
func Register(e *echo.Echo, a *handler.AuthHandler, svc *auth.Service) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	e.POST("/register", a.Register)
	e.POST("/login", a.Login)

	e.GET("/me", a.Me, middleware.Authenticate(svc))
}
