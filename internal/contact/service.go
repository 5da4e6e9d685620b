package contact

import (
	"context"

	"github.com/JordanMarcelino/contact-api/internal/auth"
	"github.com/JordanMarcelino/contact-api/internal/store"
)

// Service implements ownership-scoped contact CRUD and search.
type Service struct {
	pool     store.Pool
	contacts ContactRepository
}

// NewService wires a contact Service.
func NewService(pool store.Pool, contacts ContactRepository) *Service {
	return &Service{pool: pool, contacts: contacts}
}

// Save creates a contact owned by the given user.
func (s *Service) Save(ctx context.Context, user *auth.User, req UpsertContactRequest) (*ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact := &Contact{
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	err := store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		return s.contacts.Create(ctx, q, contact)
	})
	if err != nil {
		return nil, err
	}

	return contact.Response(), nil
}

// Get fetches a contact by id, scoped to its owner. A contact belonging to
// another user is reported as not found.
func (s *Service) Get(ctx context.Context, user *auth.User, contactID int64) (*ContactResponse, error) {
	contact, err := s.contacts.FindByUserAndID(ctx, s.pool, user.ID, contactID)
	if err != nil {
		return nil, err
	}
	return contact.Response(), nil
}

// Update replaces the contact's fields. This is a full replace, not a
// partial update.
func (s *Service) Update(ctx context.Context, user *auth.User, contactID int64, req UpsertContactRequest) (*ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var contact *Contact
	err := store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		var err error
		contact, err = s.contacts.FindByUserAndID(ctx, q, user.ID, contactID)
		if err != nil {
			return err
		}

		contact.FirstName = req.FirstName
		contact.LastName = req.LastName
		contact.Email = req.Email
		contact.Phone = req.Phone
		return s.contacts.Update(ctx, q, contact)
	})
	if err != nil {
		return nil, err
	}

	return contact.Response(), nil
}

// Delete removes the contact after the ownership-scoped lookup.
func (s *Service) Delete(ctx context.Context, user *auth.User, contactID int64) error {
	return store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		contact, err := s.contacts.FindByUserAndID(ctx, q, user.ID, contactID)
		if err != nil {
			return err
		}
		return s.contacts.Delete(ctx, q, contact.ID)
	})
}

// Search returns one page of the user's contacts matching all supplied
// filters, plus pagination metadata.
func (s *Service) Search(ctx context.Context, user *auth.User, req SearchContactRequest) ([]*ContactResponse, *PageMetadata, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	filter := SearchFilter{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Page:  req.Page,
		Size:  req.Size,
	}

	contacts, total, err := s.contacts.Search(ctx, s.pool, user.ID, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, c.Response())
	}

	totalPage := (total + int64(req.Size) - 1) / int64(req.Size)
	paging := &PageMetadata{
		TotalPage: totalPage,
		Size:      req.Size,
		HasNext:   int64(req.Page)+1 < totalPage,
	}

	return responses, paging, nil
}
