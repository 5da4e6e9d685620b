package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/JordanMarcelino/contact-api/internal/auth"
)

// AuthService is the surface of auth.Service consumed by the HTTP layer.
type AuthService interface {
	Authenticator
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.UserResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.Token, error)
	Logout(ctx context.Context, user *auth.User) error
	Get(ctx context.Context, user *auth.User) (*auth.UserResponse, error)
	Update(ctx context.Context, user *auth.User, req auth.UpdateUserRequest) (*auth.UserResponse, error)
}

// AuthHandler serves registration, login, logout, and the profile endpoints.
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.ErrBadRequest
	}

	user, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(OK(user))
}

// Login handles POST /auth/login. On success the token is returned in the
// body and set as the X-API-KEY cookie.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req auth.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.ErrBadRequest
	}

	token, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     TokenKey,
		Value:    token.Token,
		Path:     "/",
		Expires:  time.UnixMilli(token.ExpiredAt),
		HTTPOnly: true,
	})

	return c.JSON(OK(token))
}

// Logout handles POST /auth/logout. The stored token is cleared and the
// cookie expired.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.service.Logout(c.Context(), currentUser(c)); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     TokenKey,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	})

	return c.JSON(OK(true))
}

// Current handles GET /users/me.
func (h *AuthHandler) Current(c fiber.Ctx) error {
	user, err := h.service.Get(c.Context(), currentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(OK(user))
}

// UpdateCurrent handles PUT /users/me.
func (h *AuthHandler) UpdateCurrent(c fiber.Ctx) error {
	var req auth.UpdateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.ErrBadRequest
	}

	user, err := h.service.Update(c.Context(), currentUser(c), req)
	if err != nil {
		return err
	}
	return c.JSON(OK(user))
}
