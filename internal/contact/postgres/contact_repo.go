// Package postgres implements the contact repositories using PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/JordanMarcelino/contact-api/internal/contact"
	"github.com/JordanMarcelino/contact-api/internal/store"
)

// ContactRepository implements contact.ContactRepository.
type ContactRepository struct{}

var _ contact.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository creates a new ContactRepository.
func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

const contactColumns = `id, user_id, first_name, last_name, email, phone, created_at, updated_at`

// Create stores a new contact.
func (r *ContactRepository) Create(ctx context.Context, q store.DBTX, c *contact.Contact) error {
	err := q.QueryRow(ctx, `
		INSERT INTO contacts (user_id, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`,
		c.UserID,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return oops.Code("CONTACT_CREATE_FAILED").
			With("user_id", c.UserID).
			Wrap(err)
	}
	return nil
}

// FindByUserAndID retrieves a contact by id scoped to its owner. The filter
// runs in the query itself so an unowned id behaves exactly like a missing
// one.
func (r *ContactRepository) FindByUserAndID(ctx context.Context, q store.DBTX, userID, id int64) (*contact.Contact, error) {
	row := q.QueryRow(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE user_id = $1 AND id = $2
	`, userID, id)

	c, err := scanContact(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, contact.ErrContactNotFound
	}
	if err != nil {
		return nil, oops.Code("CONTACT_GET_FAILED").
			With("user_id", userID).
			With("id", id).
			Wrap(err)
	}
	return c, nil
}

// Update persists the contact's mutable fields.
func (r *ContactRepository) Update(ctx context.Context, q store.DBTX, c *contact.Contact) error {
	err := q.QueryRow(ctx, `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.ID,
	).Scan(&c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return contact.ErrContactNotFound
	}
	if err != nil {
		return oops.Code("CONTACT_UPDATE_FAILED").
			With("id", c.ID).
			Wrap(err)
	}
	return nil
}

// Delete removes a contact. Its address rows go with it via the cascading
// foreign key.
func (r *ContactRepository) Delete(ctx context.Context, q store.DBTX, id int64) error {
	_, err := q.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return oops.Code("CONTACT_DELETE_FAILED").
			With("id", id).
			Wrap(err)
	}
	return nil
}

// Search returns one page of the user's contacts matching every supplied
// filter, plus the total match count. Substring matches are case-sensitive.
func (r *ContactRepository) Search(ctx context.Context, q store.DBTX, userID int64, filter contact.SearchFilter) ([]*contact.Contact, int64, error) {
	where := `WHERE user_id = $1`
	args := []any{userID}

	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		where += fmt.Sprintf(` AND (first_name LIKE $%d OR last_name LIKE $%d)`, len(args), len(args))
	}
	if filter.Email != nil {
		args = append(args, "%"+*filter.Email+"%")
		where += fmt.Sprintf(` AND email LIKE $%d`, len(args))
	}
	if filter.Phone != nil {
		args = append(args, "%"+*filter.Phone+"%")
		where += fmt.Sprintf(` AND phone LIKE $%d`, len(args))
	}

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM contacts `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, oops.Code("CONTACT_COUNT_FAILED").
			With("user_id", userID).
			Wrap(err)
	}

	args = append(args, filter.Size, filter.Page*filter.Size)
	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM contacts
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, contactColumns, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, oops.Code("CONTACT_SEARCH_FAILED").
			With("user_id", userID).
			Wrap(err)
	}
	defer rows.Close()

	var contacts []*contact.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, oops.Code("CONTACT_SCAN_FAILED").Wrap(err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, oops.Code("CONTACT_ROWS_ERROR").Wrap(err)
	}

	return contacts, total, nil
}

func scanContact(row pgx.Row) (*contact.Contact, error) {
	c := &contact.Contact{}
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
