package organization

import (
	"github.com/payadjust/payadjust-backend-go/internal/pkg/validator"
)

type CreateOrganizationRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (r *CreateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidSlug(r.Slug) {
		errs = append(errs, validator.ValidationError{Field: "slug", Message: "must be 3-50 lowercase letters, digits or dashes"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (r *AddMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if r.Role != string(RoleAdmin) && r.Role != string(RoleMember) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'admin' or 'member'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrganizationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"created_at"`
}

type MemberResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
