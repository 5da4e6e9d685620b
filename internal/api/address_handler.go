package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/JordanMarcelino/contact-api/internal/auth"
	"github.com/JordanMarcelino/contact-api/internal/contact"
)

// AddressService is the surface of contact.AddressService consumed by the
// HTTP layer.
type AddressService interface {
	Save(ctx context.Context, user *auth.User, contactID int64, req contact.CreateAddressRequest) (*contact.AddressResponse, error)
	List(ctx context.Context, user *auth.User, contactID int64) ([]*contact.AddressResponse, error)
	Get(ctx context.Context, user *auth.User, contactID, addressID int64) (*contact.AddressResponse, error)
	Update(ctx context.Context, user *auth.User, contactID int64, req contact.UpdateAddressRequest) (*contact.AddressResponse, error)
	Delete(ctx context.Context, user *auth.User, contactID int64) error
}

// AddressHandler serves the address endpoints nested under a contact.
type AddressHandler struct {
	service AddressService
}

// NewAddressHandler creates an AddressHandler.
func NewAddressHandler(service AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

// Create handles POST /contacts/:contactId/addresses.
func (h *AddressHandler) Create(c fiber.Ctx) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var req contact.CreateAddressRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.ErrBadRequest
	}

	resp, err := h.service.Save(c.Context(), currentUser(c), contactID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(OK(resp))
}

// List handles GET /contacts/:contactId/addresses.
func (h *AddressHandler) List(c fiber.Ctx) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	resp, err := h.service.List(c.Context(), currentUser(c), contactID)
	if err != nil {
		return err
	}
	return c.JSON(OK(resp))
}

// Get handles GET /contacts/:contactId/addresses/:addressId.
func (h *AddressHandler) Get(c fiber.Ctx) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}
	addressID, err := pathID(c, "addressId")
	if err != nil {
		return err
	}

	resp, err := h.service.Get(c.Context(), currentUser(c), contactID, addressID)
	if err != nil {
		return err
	}
	return c.JSON(OK(resp))
}

// Update handles PUT /contacts/:contactId/addresses/:addressId. The update
// applies to the contact's single address.
func (h *AddressHandler) Update(c fiber.Ctx) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var req contact.UpdateAddressRequest
	if err := c.Bind().Body(&req); err != nil {
		return fiber.ErrBadRequest
	}

	resp, err := h.service.Update(c.Context(), currentUser(c), contactID, req)
	if err != nil {
		return err
	}
	return c.JSON(OK(resp))
}

// Delete handles DELETE /contacts/:contactId/addresses/:addressId. The
// delete applies to the contact's single address.
func (h *AddressHandler) Delete(c fiber.Ctx) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), currentUser(c), contactID); err != nil {
		return err
	}
	return c.JSON(OK(true))
}
