package organization

import "context"

// OrganizationRepository defines data access for organizations and their
// memberships.
type OrganizationRepository interface {
	Create(ctx context.Context, org Organization) (Organization, error)
	GetByID(ctx context.Context, id string) (Organization, error)
	GetBySlug(ctx context.Context, slug string) (Organization, error)
	ListByUser(ctx context.Context, userID string) ([]Organization, []Role, error)

	AddMember(ctx context.Context, member Member) (Member, error)
	GetMember(ctx context.Context, organizationID string, userID string) (Member, error)
	ListMembers(ctx context.Context, organizationID string) ([]Member, error)
}

// OrganizationService defines business logic for organization management.
type OrganizationService interface {
	// CreateOrganization creates an organization; the caller becomes its admin.
	CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)

	// MyOrganizations lists the organizations the caller belongs to.
	MyOrganizations(ctx context.Context) ([]OrganizationResponse, error)

	// ListMembers lists an organization's members (admin only).
	ListMembers(ctx context.Context, organizationID string) ([]MemberResponse, error)

	// AddMember attaches an existing user to the organization (admin only).
	AddMember(ctx context.Context, organizationID string, req AddMemberRequest) (MemberResponse, error)

	// RequireAdmin returns the caller's user ID if they are an admin of the
	// organization, otherwise ErrAdminRequired or ErrNotAMember.
	RequireAdmin(ctx context.Context, organizationID string) (string, error)

	// RequireMember returns the caller's user ID if they belong to the
	// organization, otherwise ErrNotAMember.
	RequireMember(ctx context.Context, organizationID string) (string, error)
}
