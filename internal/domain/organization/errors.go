package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSlugAlreadyExists    = errors.New("organization slug already taken")
	ErrNotAMember           = errors.New("not a member of this organization")
	ErrAdminRequired        = errors.New("organization admin access required")
	ErrMemberAlreadyExists  = errors.New("user is already a member of this organization")
)
