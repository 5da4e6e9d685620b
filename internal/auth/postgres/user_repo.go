// Package postgres implements the auth repositories using PostgreSQL.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/JordanMarcelino/contact-api/internal/auth"
	"github.com/JordanMarcelino/contact-api/internal/store"
)

// UserRepository implements auth.UserRepository.
type UserRepository struct{}

var _ auth.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = `id, username, name, hash_password, token, token_expired_at, created_at, updated_at`

// Create stores a new user. A duplicate username surfaces as
// auth.ErrUserAlreadyRegistered via the unique index, so concurrent
// registrations cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, q store.DBTX, user *auth.User) error {
	err := q.QueryRow(ctx, `
		INSERT INTO users (username, name, hash_password, token, token_expired_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`,
		user.Username,
		user.Name,
		user.PasswordHash,
		user.Token,
		user.TokenExpiredAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return auth.ErrUserAlreadyRegistered
	}
	if err != nil {
		return oops.Code("USER_CREATE_FAILED").
			With("username", user.Username).
			Wrap(err)
	}
	return nil
}

// FindByUsername retrieves a user by username.
func (r *UserRepository) FindByUsername(ctx context.Context, q store.DBTX, username string) (*auth.User, error) {
	row := q.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = $1
	`, username)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, oops.Code("USER_GET_BY_USERNAME_FAILED").
			With("username", username).
			Wrap(err)
	}
	return user, nil
}

// FindByToken retrieves the user holding the given session token.
func (r *UserRepository) FindByToken(ctx context.Context, q store.DBTX, token string) (*auth.User, error) {
	row := q.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE token = $1
	`, token)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, oops.Code("USER_GET_BY_TOKEN_FAILED").Wrap(err)
	}
	return user, nil
}

// Update persists the user's mutable fields.
func (r *UserRepository) Update(ctx context.Context, q store.DBTX, user *auth.User) error {
	err := q.QueryRow(ctx, `
		UPDATE users
		SET name = $1, hash_password = $2, token = $3, token_expired_at = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`,
		user.Name,
		user.PasswordHash,
		user.Token,
		user.TokenExpiredAt,
		user.ID,
	).Scan(&user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return auth.ErrUserNotFound
	}
	if err != nil {
		return oops.Code("USER_UPDATE_FAILED").
			With("id", user.ID).
			Wrap(err)
	}
	return nil
}

func scanUser(row pgx.Row) (*auth.User, error) {
	user := &auth.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.Token,
		&user.TokenExpiredAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
