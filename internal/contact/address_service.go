package contact

import (
	"context"

	"github.com/JordanMarcelino/contact-api/internal/auth"
	"github.com/JordanMarcelino/contact-api/internal/store"
)

// AddressService implements address CRUD scoped through the owning contact,
// which is itself ownership-checked against the caller. Mutations operate on
// the contact's single address.
type AddressService struct {
	pool      store.Pool
	contacts  ContactRepository
	addresses AddressRepository
}

// NewAddressService wires an AddressService.
func NewAddressService(pool store.Pool, contacts ContactRepository, addresses AddressRepository) *AddressService {
	return &AddressService{pool: pool, contacts: contacts, addresses: addresses}
}

// Save creates the address of a contact.
func (s *AddressService) Save(ctx context.Context, user *auth.User, contactID int64, req CreateAddressRequest) (*AddressResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	address := &Address{
		Country:    req.Country,
		Province:   req.Province,
		City:       req.City,
		Street:     req.Street,
		PostalCode: req.PostalCode,
	}

	err := store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		contact, err := s.contacts.FindByUserAndID(ctx, q, user.ID, contactID)
		if err != nil {
			return err
		}

		address.ContactID = contact.ID
		return s.addresses.Create(ctx, q, address)
	})
	if err != nil {
		return nil, err
	}

	return address.Response(), nil
}

// List returns all addresses of a contact.
func (s *AddressService) List(ctx context.Context, user *auth.User, contactID int64) ([]*AddressResponse, error) {
	contact, err := s.contacts.FindByUserAndID(ctx, s.pool, user.ID, contactID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addresses.FindAllByContact(ctx, s.pool, contact.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]*AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		responses = append(responses, a.Response())
	}
	return responses, nil
}

// Get fetches one address by id, scoped through the owning contact.
func (s *AddressService) Get(ctx context.Context, user *auth.User, contactID, addressID int64) (*AddressResponse, error) {
	contact, err := s.contacts.FindByUserAndID(ctx, s.pool, user.ID, contactID)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.FindByContactAndID(ctx, s.pool, contact.ID, addressID)
	if err != nil {
		return nil, err
	}
	return address.Response(), nil
}

// Update applies a partial update to the contact's address: a field is
// overwritten only when present in the request.
func (s *AddressService) Update(ctx context.Context, user *auth.User, contactID int64, req UpdateAddressRequest) (*AddressResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var address *Address
	err := store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		contact, err := s.contacts.FindByUserAndID(ctx, q, user.ID, contactID)
		if err != nil {
			return err
		}

		address, err = s.addresses.FindFirstByContact(ctx, q, contact.ID)
		if err != nil {
			return err
		}

		if req.Country != nil {
			address.Country = *req.Country
		}
		if req.Province != nil {
			address.Province = req.Province
		}
		if req.City != nil {
			address.City = req.City
		}
		if req.Street != nil {
			address.Street = req.Street
		}
		if req.PostalCode != nil {
			address.PostalCode = req.PostalCode
		}
		return s.addresses.Update(ctx, q, address)
	})
	if err != nil {
		return nil, err
	}

	return address.Response(), nil
}

// Delete removes the contact's address.
func (s *AddressService) Delete(ctx context.Context, user *auth.User, contactID int64) error {
	return store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		contact, err := s.contacts.FindByUserAndID(ctx, q, user.ID, contactID)
		if err != nil {
			return err
		}

		address, err := s.addresses.FindFirstByContact(ctx, q, contact.ID)
		if err != nil {
			return err
		}
		return s.addresses.Delete(ctx, q, address.ID)
	})
}
