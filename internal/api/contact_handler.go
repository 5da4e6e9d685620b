package api

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/JordanMarcelino/contact-api/internal/auth"
	"github.com/JordanMarcelino/contact-api/internal/contact"
)

// Search defaults applied when the query parameters are absent.
const (
	defaultPage = 0
	defaultSize = 10
)

// ContactService is the surface of contact.Service consumed by the HTTP
// layer.
type ContactService interface {
	Save(ctx context.Context, user *auth.User, req contact.UpsertContactRequest) (*contact.ContactResponse, error)
	Get(ctx context.Context, user *auth.User, contactID int64) (*contact.ContactResponse, error)
	Update(ctx context.Context, user *auth.User, contactID int64, req contact.UpsertContactRequest) (*contact.ContactResponse, error)
	Delete(ctx context.Context, user *auth.User, contactID int64) error
	Search(ctx context.Context, user *auth.User, req contact.SearchContactRequest) ([]*contact.ContactResponse, *contact.PageMetadata, error)
}

// ContactHandler serves the contact CRUD and search endpoints.
type ContactHandler struct {
	service ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(service ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create handles POST /contacts.
func (h *ContactHandler) Create(c fiber.Ctx) error {
	var req contact.UpsertContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.ErrBadRequest
	}

	resp, err := h.service.Save(c.Context(), currentUser(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(OK(resp))
}

// Get handles GET /contacts/:contactId.
func (h *ContactHandler) Get(c fiber.Ctx) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	resp, err := h.service.Get(c.Context(), currentUser(c), contactID)
	if err != nil {
		return err
	}
	return c.JSON(OK(resp))
}

// Update handles PUT /contacts/:contactId.
func (h *ContactHandler) Update(c fiber.Ctx) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var req contact.UpsertContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.ErrBadRequest
	}

	resp, err := h.service.Update(c.Context(), currentUser(c), contactID, req)
	if err != nil {
		return err
	}
	return c.JSON(OK(resp))
}

// Delete handles DELETE /contacts/:contactId.
func (h *ContactHandler) Delete(c fiber.Ctx) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), currentUser(c), contactID); err != nil {
		return err
	}
	return c.JSON(OK(true))
}

// Search handles GET /contacts. name, email, and phone are optional
// substring filters; page defaults to 0 and size to 10.
func (h *ContactHandler) Search(c fiber.Ctx) error {
	req := contact.SearchContactRequest{
		Name:  queryString(c, "name"),
		Email: queryString(c, "email"),
		Phone: queryString(c, "phone"),
		Page:  fiber.Query(c, "page", defaultPage),
		Size:  fiber.Query(c, "size", defaultSize),
	}

	contacts, paging, err := h.service.Search(c.Context(), currentUser(c), req)
	if err != nil {
		return err
	}

	return c.JSON(WebResponse{
		Message: MessageSuccess,
		Data:    contacts,
		Paging:  paging,
	})
}

// pathID parses a numeric path parameter. A malformed id reads as a missing
// resource, not a bad request.
func pathID(c fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

func queryString(c fiber.Ctx, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}
