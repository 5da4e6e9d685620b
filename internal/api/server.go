package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

// Server bundles the handlers behind the REST surface.
type Server struct {
	auth      *AuthHandler
	contacts  *ContactHandler
	addresses *AddressHandler
	authn     Authenticator
	logger    *slog.Logger
}

// NewServer wires a Server.
func NewServer(authService AuthService, contactService ContactService, addressService AddressService, log *slog.Logger) *Server {
	return &Server{
		auth:      NewAuthHandler(authService),
		contacts:  NewContactHandler(contactService),
		addresses: NewAddressHandler(addressService),
		authn:     authService,
		logger:    log,
	}
}

// App builds the Fiber application with middleware, the error handler, and
// every route mounted under /api.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "contact-api",
		ErrorHandler: ErrorHandler(s.logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())

	s.RegisterRoutes(app)
	return app
}

// RegisterRoutes mounts the REST routes on the app.
func (s *Server) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Public routes
	api.Post("/auth/register", s.auth.Register)
	api.Post("/auth/login", s.auth.Login)

	// Protected routes
	protected := api.Group("", RequireAuth(s.authn))
	protected.Post("/auth/logout", s.auth.Logout)
	protected.Get("/users/me", s.auth.Current)
	protected.Put("/users/me", s.auth.UpdateCurrent)

	protected.Get("/contacts", s.contacts.Search)
	protected.Post("/contacts", s.contacts.Create)
	protected.Get("/contacts/:contactId", s.contacts.Get)
	protected.Put("/contacts/:contactId", s.contacts.Update)
	protected.Delete("/contacts/:contactId", s.contacts.Delete)

	protected.Get("/contacts/:contactId/addresses", s.addresses.List)
	protected.Post("/contacts/:contactId/addresses", s.addresses.Create)
	protected.Get("/contacts/:contactId/addresses/:addressId", s.addresses.Get)
	protected.Put("/contacts/:contactId/addresses/:addressId", s.addresses.Update)
	protected.Delete("/contacts/:contactId/addresses/:addressId", s.addresses.Delete)
}
