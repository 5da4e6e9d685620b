package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JordanMarcelino/contact-api/internal/auth"
)

func TestUserRepository_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful insert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(int64(1), now, now)
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "Alice", "hash", pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(rows)
			},
		},
		{
			name: "duplicate username",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "Alice", "hash", pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: auth.ErrUserAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository()
			user := &auth.User{Username: "alice", Name: "Alice", PasswordHash: "hash"}
			err = repo.Create(context.Background(), mock, user)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), user.ID)
				assert.Equal(t, now, user.CreatedAt)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	now := time.Now()
	token := "token-1"
	expiry := now.Add(time.Hour).UnixMilli()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{
					"id", "username", "name", "hash_password",
					"token", "token_expired_at", "created_at", "updated_at",
				}).AddRow(int64(1), "alice", "Alice", "hash", &token, &expiry, now, now)
				mock.ExpectQuery(`(?s)SELECT .+ FROM users\s+WHERE username = \$1`).
					WithArgs("alice").
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`(?s)SELECT .+ FROM users\s+WHERE username = \$1`).
					WithArgs("alice").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: auth.ErrUserNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`(?s)SELECT .+ FROM users\s+WHERE username = \$1`).
					WithArgs("alice").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository()
			user, err := repo.FindByUsername(context.Background(), mock, "alice")

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
				require.NotNil(t, user.Token)
				assert.Equal(t, token, *user.Token)
			case errors.Is(tt.wantErr, auth.ErrUserNotFound):
				require.ErrorIs(t, err, auth.ErrUserNotFound)
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestUserRepository_FindByToken(t *testing.T) {
	now := time.Now()
	token := "token-1"
	expiry := now.Add(time.Hour).UnixMilli()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err, "failed to create mock")
		defer mock.Close()

		rows := pgxmock.NewRows([]string{
			"id", "username", "name", "hash_password",
			"token", "token_expired_at", "created_at", "updated_at",
		}).AddRow(int64(1), "alice", "Alice", "hash", &token, &expiry, now, now)
		mock.ExpectQuery(`(?s)SELECT .+ FROM users\s+WHERE token = \$1`).
			WithArgs(token).
			WillReturnRows(rows)

		repo := NewUserRepository()
		user, err := repo.FindByToken(context.Background(), mock, token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)

		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err, "failed to create mock")
		defer mock.Close()

		mock.ExpectQuery(`(?s)SELECT .+ FROM users\s+WHERE token = \$1`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		repo := NewUserRepository()
		_, err = repo.FindByToken(context.Background(), mock, "missing")
		require.ErrorIs(t, err, auth.ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})
}

func TestUserRepository_Update(t *testing.T) {
	now := time.Now()
	token := "token-2"
	expiry := now.Add(time.Hour).UnixMilli()

	t.Run("successful update", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err, "failed to create mock")
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"updated_at"}).AddRow(now)
		mock.ExpectQuery(`(?s)UPDATE users\s+SET`).
			WithArgs("Alice", "hash", &token, &expiry, int64(1)).
			WillReturnRows(rows)

		repo := NewUserRepository()
		user := &auth.User{ID: 1, Name: "Alice", PasswordHash: "hash", Token: &token, TokenExpiredAt: &expiry}
		require.NoError(t, repo.Update(context.Background(), mock, user))
		assert.Equal(t, now, user.UpdatedAt)

		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("missing user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err, "failed to create mock")
		defer mock.Close()

		mock.ExpectQuery(`(?s)UPDATE users\s+SET`).
			WithArgs("Alice", "hash", pgxmock.AnyArg(), pgxmock.AnyArg(), int64(7)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewUserRepository()
		user := &auth.User{ID: 7, Name: "Alice", PasswordHash: "hash"}
		require.ErrorIs(t, repo.Update(context.Background(), mock, user), auth.ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})
}
