package organization

import "time"

type Organization struct {
	ID        string
	Name      string
	Slug      string
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role enum
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Member struct {
	ID             string
	OrganizationID string
	UserID         string
	Role           Role
	CreatedAt      time.Time

	// Joined fields
	FullName *string
	Email    *string
}
