package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JordanMarcelino/contact-api/internal/store"
)

// Service implements registration, login, logout, session resolution, and
// profile management. Every mutating operation runs inside one transaction.
type Service struct {
	pool     store.Pool
	users    UserRepository
	hasher   PasswordHasher
	tokenTTL time.Duration
}

// NewService wires a Service. A zero tokenTTL falls back to DefaultTokenTTL.
func NewService(pool store.Pool, users UserRepository, hasher PasswordHasher, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		pool:     pool,
		users:    users,
		hasher:   hasher,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user account. The username must be unique; the
// password is stored only as an argon2id hash.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	}

	err = store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		_, err := s.users.FindByUsername(ctx, q, req.Username)
		if err == nil {
			return ErrUserAlreadyRegistered
		}
		if !errors.Is(err, ErrUserNotFound) {
			return fmt.Errorf("failed to check existing user: %w", err)
		}

		return s.users.Create(ctx, q, user)
	})
	if err != nil {
		return nil, err
	}

	return user.Response(), nil
}

// Login verifies credentials and issues a fresh opaque token valid for the
// configured TTL. An unknown username and a wrong password fail identically
// so usernames cannot be enumerated.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Token, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var token Token
	err := store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		user, err := s.users.FindByUsername(ctx, q, req.Username)
		if errors.Is(err, ErrUserNotFound) {
			return ErrLoginFailed
		}
		if err != nil {
			return fmt.Errorf("failed to find user: %w", err)
		}

		ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
		if err != nil {
			return fmt.Errorf("failed to verify password: %w", err)
		}
		if !ok {
			return ErrLoginFailed
		}

		token = NewToken(s.tokenTTL)
		user.Token = &token.Token
		user.TokenExpiredAt = &token.ExpiredAt
		return s.users.Update(ctx, q, user)
	})
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// Logout clears the user's stored token and expiry.
func (s *Service) Logout(ctx context.Context, user *User) error {
	return store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		user.Token = nil
		user.TokenExpiredAt = nil
		return s.users.Update(ctx, q, user)
	})
}

// Authenticate resolves an opaque token to its user. A missing token, an
// unknown token, and an expired token all fail with ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByToken(ctx, s.pool, token)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}

	if user.TokenExpiredAt == nil || *user.TokenExpiredAt < time.Now().UnixMilli() {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// Get projects the authenticated user's profile.
func (s *Service) Get(ctx context.Context, user *User) (*UserResponse, error) {
	return user.Response(), nil
}

// Update applies a partial profile update: only fields present in the
// request change, and a new password is re-hashed before storage.
func (s *Service) Update(ctx context.Context, user *User, req UpdateUserRequest) (*UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	err := store.WithTx(ctx, s.pool, func(ctx context.Context, q store.DBTX) error {
		return s.users.Update(ctx, q, user)
	})
	if err != nil {
		return nil, err
	}

	return user.Response(), nil
}
