package auth

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTokenTTL is how long an issued session token stays valid.
const DefaultTokenTTL = 30 * 24 * time.Hour

// Token is the opaque bearer credential issued at login. ExpiredAt is epoch
// milliseconds; the value itself carries no structure a client could parse.
type Token struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}

// NewToken issues a fresh random token expiring ttl from now.
func NewToken(ttl time.Duration) Token {
	return Token{
		Token:     uuid.NewString(),
		ExpiredAt: time.Now().Add(ttl).UnixMilli(),
	}
}

// Expired reports whether the token is expired at the given instant.
func (t Token) Expired(at time.Time) bool {
	return t.ExpiredAt < at.UnixMilli()
}
