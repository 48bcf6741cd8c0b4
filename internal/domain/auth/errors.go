package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
	ErrUserNotFound       = errors.New("user not found")
)
