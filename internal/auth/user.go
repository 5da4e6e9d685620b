// Package auth provides user accounts, credential hashing, and opaque
// session tokens for the contacts API.
package auth

import (
	"context"
	"time"

	"github.com/JordanMarcelino/contact-api/internal/store"
	"github.com/JordanMarcelino/contact-api/internal/validate"
)

// User is a registered account. Token and TokenExpiredAt mirror the current
// session token and are nil while the user is logged out.
type User struct {
	ID             int64
	Username       string
	Name           string
	PasswordHash   string
	Token          *string
	TokenExpiredAt *int64 // epoch millis
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserResponse is the public projection of a user. It never carries the
// password hash or the session token.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Response projects the user for API consumption.
func (u *User) Response() *UserResponse {
	return &UserResponse{ID: u.ID, Username: u.Username, Name: u.Name}
}

// UserRepository manages user persistence. Lookups return ErrUserNotFound
// when no row matches.
type UserRepository interface {
	Create(ctx context.Context, q store.DBTX, user *User) error
	FindByUsername(ctx context.Context, q store.DBTX, username string) (*User, error)
	FindByToken(ctx context.Context, q store.DBTX, token string) (*User, error)
	Update(ctx context.Context, q store.DBTX, user *User) error
}

// RegisterRequest carries the register payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	var c validate.Collector
	c.NotBlank("username", r.Username)
	c.MaxLen("username", r.Username, 100)
	c.NotBlank("name", r.Name)
	c.MaxLen("name", r.Name, 100)
	c.NotBlank("password", r.Password)
	c.MinLen("password", r.Password, 8)
	c.MaxLen("password", r.Password, 100)
	return c.Err()
}

// LoginRequest carries the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var c validate.Collector
	c.NotBlank("username", r.Username)
	c.NotBlank("password", r.Password)
	return c.Err()
}

// UpdateUserRequest carries the profile update payload. Nil fields are left
// untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (r UpdateUserRequest) Validate() error {
	var c validate.Collector
	if r.Name != nil {
		c.NotBlank("name", *r.Name)
		c.MaxLen("name", *r.Name, 100)
	}
	if r.Password != nil {
		c.MinLen("password", *r.Password, 8)
		c.MaxLen("password", *r.Password, 100)
		c.NotBlank("password", *r.Password)
	}
	return c.Err()
}
