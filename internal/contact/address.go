package contact

import (
	"context"

	"github.com/JordanMarcelino/contact-api/internal/store"
	"github.com/JordanMarcelino/contact-api/internal/validate"
)

// Address is the postal address of a contact. A contact holds at most one
// address; mutations resolve "the" address of the contact.
type Address struct {
	ID         int64
	ContactID  int64
	Country    string
	Province   *string
	City       *string
	Street     *string
	PostalCode *string
}

// AddressResponse is the API projection of an address.
type AddressResponse struct {
	ID         int64   `json:"id"`
	Country    string  `json:"country"`
	Province   *string `json:"province"`
	City       *string `json:"city"`
	Street     *string `json:"street"`
	PostalCode *string `json:"postalCode"`
}

// Response projects the address for API consumption.
func (a *Address) Response() *AddressResponse {
	return &AddressResponse{
		ID:         a.ID,
		Country:    a.Country,
		Province:   a.Province,
		City:       a.City,
		Street:     a.Street,
		PostalCode: a.PostalCode,
	}
}

// AddressRepository manages address persistence, always scoped through the
// owning contact.
type AddressRepository interface {
	Create(ctx context.Context, q store.DBTX, address *Address) error
	FindAllByContact(ctx context.Context, q store.DBTX, contactID int64) ([]*Address, error)
	FindByContactAndID(ctx context.Context, q store.DBTX, contactID, id int64) (*Address, error)
	FindFirstByContact(ctx context.Context, q store.DBTX, contactID int64) (*Address, error)
	Update(ctx context.Context, q store.DBTX, address *Address) error
	Delete(ctx context.Context, q store.DBTX, id int64) error
}

// CreateAddressRequest carries the address create payload.
type CreateAddressRequest struct {
	Country    string  `json:"country"`
	Province   *string `json:"province"`
	City       *string `json:"city"`
	Street     *string `json:"street"`
	PostalCode *string `json:"postalCode"`
}

func (r CreateAddressRequest) Validate() error {
	var c validate.Collector
	c.NotBlank("country", r.Country)
	c.MaxLen("country", r.Country, 100)
	if r.Province != nil {
		c.MaxLen("province", *r.Province, 100)
	}
	if r.City != nil {
		c.MaxLen("city", *r.City, 100)
	}
	if r.Street != nil {
		c.MaxLen("street", *r.Street, 100)
	}
	if r.PostalCode != nil {
		c.MaxLen("postalCode", *r.PostalCode, 100)
	}
	return c.Err()
}

// UpdateAddressRequest carries the address update payload. Nil fields are
// left untouched; the rule is applied uniformly to every field.
type UpdateAddressRequest struct {
	Country    *string `json:"country"`
	Province   *string `json:"province"`
	City       *string `json:"city"`
	Street     *string `json:"street"`
	PostalCode *string `json:"postalCode"`
}

func (r UpdateAddressRequest) Validate() error {
	var c validate.Collector
	if r.Country != nil {
		c.NotBlank("country", *r.Country)
		c.MaxLen("country", *r.Country, 100)
	}
	if r.Province != nil {
		c.MaxLen("province", *r.Province, 100)
	}
	if r.City != nil {
		c.MaxLen("city", *r.City, 100)
	}
	if r.Street != nil {
		c.MaxLen("street", *r.Street, 100)
	}
	if r.PostalCode != nil {
		c.MaxLen("postalCode", *r.PostalCode, 100)
	}
	return c.Err()
}
