package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserEmailExists       = errors.New("email already registered")
	ErrInvalidEmailFormat    = errors.New("invalid email format")
	ErrInvalidPasswordLength = errors.New("password must be at least 8 characters")
	ErrInvalidOAuthProvider  = errors.New("invalid oauth provider")
	ErrOAuthProviderIDExists = errors.New("oauth provider id already registered")
	ErrNoPasswordSet         = errors.New("account has no password set")
)
