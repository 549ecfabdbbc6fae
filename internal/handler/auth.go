package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/user-auth-service/internal/auth"
	"github.com/iliyamo/user-auth-service/internal/middleware"
	"github.com/iliyamo/user-auth-service/internal/queue"
)

// dbTimeout bounds the duration of repository calls made on behalf of a
// single request.
const dbTimeout = 5 * time.Second

// AuthHandler bundles dependencies for the auth endpoints. PublishRegistered
// is optional; when set it receives a best-effort event after each
// successful registration.
type AuthHandler struct {
	Auth              *auth.Service
	PublishRegistered func(ctx context.Context, event queue.UserRegisteredEvent) error
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{Auth: svc}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r registerReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		// bcrypt input is capped at 72 bytes
		validation.Field(&r.Password, validation.Required, validation.Length(1, 72)),
		validation.Field(&r.Name, validation.Length(0, 255)),
	)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// userResp is the outward view of a user. It deliberately has no slot
// for the password hash.
type userResp struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates an account and returns its outward view.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Auth.Register(ctx, req.Email, req.Password, strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	if h.PublishRegistered != nil {
		// Best effort: a broker outage must not fail the registration.
		_ = h.PublishRegistered(ctx, queue.UserRegisteredEvent{
			UserID:       u.ID,
			Email:        u.Email,
			Name:         u.Name,
			RegisteredAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, userResp{ID: u.ID, Email: u.Email, Name: u.Name})
}

// Login verifies credentials and returns a bearer access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	token, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	return c.JSON(http.StatusOK, tokenResp{AccessToken: token, TokenType: "bearer"})
}

// Me returns the identity resolved by the authentication middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "could not validate credentials"})
	}
	return c.JSON(http.StatusOK, userResp{ID: ident.ID, Email: ident.Email, Name: ident.Name})
}
