package middleware // reusable HTTP middleware for the auth service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/user-auth-service/internal/auth"
)

// identityKey is the echo context key under which the resolved identity
// is stored for downstream handlers.
const identityKey = "identity"

// resolveTimeout bounds the repository lookup performed during identity
// resolution.
const resolveTimeout = 5 * time.Second

// Authenticate returns an echo middleware that extracts the Bearer token
// from the Authorization header, resolves it to an identity through the
// auth service, and stores the identity in the request context. Every
// failure mode — missing header, malformed, expired or forged token,
// vanished user — produces the same 401 body so the response cannot be
// used as a validation oracle.
func Authenticate(svc *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return unauthorized(c)
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			ctx, cancel := context.WithTimeout(c.Request().Context(), resolveTimeout)
			defer cancel()

			ident, err := svc.ResolveIdentity(ctx, raw)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthorized) {
					return unauthorized(c)
				}
				// Repository outage, not a credential problem.
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "identity lookup failed"})
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// IdentityFrom retrieves the identity stored by Authenticate.
func IdentityFrom(c echo.Context) (auth.Identity, bool) {
	ident, ok := c.Get(identityKey).(auth.Identity)
	return ident, ok
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "could not validate credentials"})
}
