// Package contact provides the contact and address domain: models,
// ownership-scoped repositories, and the services behind the REST surface.
package contact

import (
	"context"
	"time"

	"github.com/JordanMarcelino/contact-api/internal/store"
	"github.com/JordanMarcelino/contact-api/internal/validate"
)

// Contact is a person in a user's private address book. Only FirstName is
// required; the remaining fields stay nil when never supplied.
type Contact struct {
	ID        int64
	UserID    int64
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactResponse is the API projection of a contact.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Response projects the contact for API consumption.
func (c *Contact) Response() *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// SearchFilter holds the optional contact search predicates. Nil filters are
// not applied; Name matches first OR last name as a case-sensitive
// substring. Page is zero-based.
type SearchFilter struct {
	Name  *string
	Email *string
	Phone *string
	Page  int
	Size  int
}

// PageMetadata is the pagination block of a search response.
type PageMetadata struct {
	TotalPage int64 `json:"totalPage"`
	Size      int   `json:"size"`
	HasNext   bool  `json:"hasNext"`
}

// ContactRepository manages contact persistence. Lookups scoped by user are
// single filtered queries on (user_id, id); a contact owned by someone else
// is indistinguishable from a missing one.
type ContactRepository interface {
	Create(ctx context.Context, q store.DBTX, contact *Contact) error
	FindByUserAndID(ctx context.Context, q store.DBTX, userID, id int64) (*Contact, error)
	Update(ctx context.Context, q store.DBTX, contact *Contact) error
	Delete(ctx context.Context, q store.DBTX, id int64) error
	Search(ctx context.Context, q store.DBTX, userID int64, filter SearchFilter) ([]*Contact, int64, error)
}

// UpsertContactRequest carries the create payload, and the update payload as
// a full replace.
type UpsertContactRequest struct {
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func (r UpsertContactRequest) Validate() error {
	var c validate.Collector
	c.NotBlank("firstName", r.FirstName)
	c.MaxLen("firstName", r.FirstName, 100)
	if r.LastName != nil {
		c.MaxLen("lastName", *r.LastName, 100)
	}
	if r.Email != nil {
		c.MaxLen("email", *r.Email, 255)
		c.Email("email", *r.Email)
	}
	if r.Phone != nil {
		c.MaxLen("phone", *r.Phone, 100)
	}
	return c.Err()
}

// SearchContactRequest carries the search query parameters.
type SearchContactRequest struct {
	Name  *string
	Email *string
	Phone *string
	Page  int
	Size  int
}

func (r SearchContactRequest) Validate() error {
	var c validate.Collector
	if r.Name != nil {
		c.MaxLen("name", *r.Name, 200)
	}
	if r.Email != nil {
		c.MaxLen("email", *r.Email, 255)
	}
	if r.Phone != nil {
		c.MaxLen("phone", *r.Phone, 100)
	}
	c.Min("page", r.Page, 0)
	c.Min("size", r.Size, 1)
	return c.Err()
}
