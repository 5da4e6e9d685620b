package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/JordanMarcelino/contact-api/internal/auth"
)

// TokenKey is the header and cookie carrying the session token.
const TokenKey = "X-API-KEY"

const userLocal = "user"

// Authenticator resolves an opaque token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.User, error)
}

// RequireAuth validates the request token and stores the resolved user in
// the context for downstream handlers.
func RequireAuth(authn Authenticator) fiber.Handler {
	return func(c fiber.Ctx) error {
		user, err := authn.Authenticate(c.Context(), extractToken(c))
		if err != nil {
			return err
		}

		c.Locals(userLocal, user)
		return c.Next()
	}
}

// extractToken reads the session token from the X-API-KEY header, falling
// back to the cookie set at login.
func extractToken(c fiber.Ctx) string {
	if token := c.Get(TokenKey); token != "" {
		return token
	}
	return c.Cookies(TokenKey)
}

// currentUser returns the user stored by RequireAuth.
func currentUser(c fiber.Ctx) *auth.User {
	user, _ := c.Locals(userLocal).(*auth.User)
	return user
}
