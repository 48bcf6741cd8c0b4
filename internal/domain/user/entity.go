package user

import "time"

type User struct {
	ID              string
	Email           string
	FullName        string
	PasswordHash    *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPassword reports whether the account can sign in with credentials.
// OAuth-only accounts have no password hash until one is linked.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
