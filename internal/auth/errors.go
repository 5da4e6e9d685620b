package auth

import "errors"

var (
	ErrUserAlreadyRegistered = errors.New("user already registered")       // 400 Bad Request
	ErrLoginFailed           = errors.New("username or password is wrong") // 400 Bad Request
	ErrUserNotFound          = errors.New("user not found")
	ErrUnauthorized          = errors.New("unauthorized") // 401 Unauthorized
)
