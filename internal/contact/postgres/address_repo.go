package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/JordanMarcelino/contact-api/internal/contact"
	"github.com/JordanMarcelino/contact-api/internal/store"
)

// AddressRepository implements contact.AddressRepository.
type AddressRepository struct{}

var _ contact.AddressRepository = (*AddressRepository)(nil)

// NewAddressRepository creates a new AddressRepository.
func NewAddressRepository() *AddressRepository {
	return &AddressRepository{}
}

const addressColumns = `id, contact_id, country, province, city, street, postal_code`

// Create stores a new address for a contact.
func (r *AddressRepository) Create(ctx context.Context, q store.DBTX, a *contact.Address) error {
	err := q.QueryRow(ctx, `
		INSERT INTO addresses (contact_id, country, province, city, street, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		a.ContactID,
		a.Country,
		a.Province,
		a.City,
		a.Street,
		a.PostalCode,
	).Scan(&a.ID)

	if err != nil {
		return oops.Code("ADDRESS_CREATE_FAILED").
			With("contact_id", a.ContactID).
			Wrap(err)
	}
	return nil
}

// FindAllByContact returns every address of a contact, oldest first.
func (r *AddressRepository) FindAllByContact(ctx context.Context, q store.DBTX, contactID int64) ([]*contact.Address, error) {
	rows, err := q.Query(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id
	`, contactID)
	if err != nil {
		return nil, oops.Code("ADDRESS_LIST_FAILED").
			With("contact_id", contactID).
			Wrap(err)
	}
	defer rows.Close()

	var addresses []*contact.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, oops.Code("ADDRESS_SCAN_FAILED").Wrap(err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("ADDRESS_ROWS_ERROR").Wrap(err)
	}

	return addresses, nil
}

// FindByContactAndID retrieves one address scoped to its contact.
func (r *AddressRepository) FindByContactAndID(ctx context.Context, q store.DBTX, contactID, id int64) (*contact.Address, error) {
	row := q.QueryRow(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE contact_id = $1 AND id = $2
	`, contactID, id)

	a, err := scanAddress(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, contact.ErrAddressNotFound
	}
	if err != nil {
		return nil, oops.Code("ADDRESS_GET_FAILED").
			With("contact_id", contactID).
			With("id", id).
			Wrap(err)
	}
	return a, nil
}

// FindFirstByContact resolves the contact's single address. With multiple
// rows present the oldest one wins.
func (r *AddressRepository) FindFirstByContact(ctx context.Context, q store.DBTX, contactID int64) (*contact.Address, error) {
	row := q.QueryRow(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id
		LIMIT 1
	`, contactID)

	a, err := scanAddress(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, contact.ErrAddressNotFound
	}
	if err != nil {
		return nil, oops.Code("ADDRESS_GET_FAILED").
			With("contact_id", contactID).
			Wrap(err)
	}
	return a, nil
}

// Update persists the address fields.
func (r *AddressRepository) Update(ctx context.Context, q store.DBTX, a *contact.Address) error {
	tag, err := q.Exec(ctx, `
		UPDATE addresses
		SET country = $1, province = $2, city = $3, street = $4, postal_code = $5
		WHERE id = $6
	`,
		a.Country,
		a.Province,
		a.City,
		a.Street,
		a.PostalCode,
		a.ID,
	)
	if err != nil {
		return oops.Code("ADDRESS_UPDATE_FAILED").
			With("id", a.ID).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrAddressNotFound
	}
	return nil
}

// Delete removes an address.
func (r *AddressRepository) Delete(ctx context.Context, q store.DBTX, id int64) error {
	_, err := q.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return oops.Code("ADDRESS_DELETE_FAILED").
			With("id", id).
			Wrap(err)
	}
	return nil
}

func scanAddress(row pgx.Row) (*contact.Address, error) {
	a := &contact.Address{}
	err := row.Scan(
		&a.ID,
		&a.ContactID,
		&a.Country,
		&a.Province,
		&a.City,
		&a.Street,
		&a.PostalCode,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
