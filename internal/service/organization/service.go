package organization

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
	"github.com/payadjust/payadjust-backend-go/internal/repository/postgresql"
)

type OrganizationServiceImpl struct {
	db      *database.DB
	orgRepo organization.OrganizationRepository
}

func NewOrganizationService(db *database.DB, orgRepo organization.OrganizationRepository) organization.OrganizationService {
	return &OrganizationServiceImpl{db: db, orgRepo: orgRepo}
}

func getClaimsFromContext(ctx context.Context) (userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *OrganizationServiceImpl) CreateOrganization(ctx context.Context, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	var org organization.Organization
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		org, err = s.orgRepo.Create(txCtx, organization.Organization{
			Name:      req.Name,
			Slug:      req.Slug,
			CreatedBy: &userID,
		})
		if err != nil {
			return err
		}

		// The creator is the first admin.
		_, err = s.orgRepo.AddMember(txCtx, organization.Member{
			OrganizationID: org.ID,
			UserID:         userID,
			Role:           organization.RoleAdmin,
		})
		return err
	})
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	return toOrganizationResponse(org, organization.RoleAdmin), nil
}

func (s *OrganizationServiceImpl) MyOrganizations(ctx context.Context) ([]organization.OrganizationResponse, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	orgs, roles, err := s.orgRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]organization.OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = toOrganizationResponse(org, roles[i])
	}

	return responses, nil
}

func (s *OrganizationServiceImpl) ListMembers(ctx context.Context, organizationID string) ([]organization.MemberResponse, error) {
	if _, err := s.RequireAdmin(ctx, organizationID); err != nil {
		return nil, err
	}

	members, err := s.orgRepo.ListMembers(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]organization.MemberResponse, len(members))
	for i, m := range members {
		responses[i] = toMemberResponse(m)
	}

	return responses, nil
}

func (s *OrganizationServiceImpl) AddMember(ctx context.Context, organizationID string, req organization.AddMemberRequest) (organization.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.MemberResponse{}, err
	}

	if _, err := s.RequireAdmin(ctx, organizationID); err != nil {
		return organization.MemberResponse{}, err
	}

	member, err := s.orgRepo.AddMember(ctx, organization.Member{
		OrganizationID: organizationID,
		UserID:         req.UserID,
		Role:           organization.Role(req.Role),
	})
	if err != nil {
		return organization.MemberResponse{}, err
	}

	return toMemberResponse(member), nil
}

func (s *OrganizationServiceImpl) RequireAdmin(ctx context.Context, organizationID string) (string, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return "", err
	}

	member, err := s.orgRepo.GetMember(ctx, organizationID, userID)
	if err != nil {
		return "", err
	}
	if member.Role != organization.RoleAdmin {
		return "", organization.ErrAdminRequired
	}

	return userID, nil
}

func (s *OrganizationServiceImpl) RequireMember(ctx context.Context, organizationID string) (string, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return "", err
	}

	if _, err := s.orgRepo.GetMember(ctx, organizationID, userID); err != nil {
		return "", err
	}

	return userID, nil
}

func toOrganizationResponse(o organization.Organization, role organization.Role) organization.OrganizationResponse {
	return organization.OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		Role:      string(role),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}

func toMemberResponse(m organization.Member) organization.MemberResponse {
	resp := organization.MemberResponse{
		ID:     m.ID,
		UserID: m.UserID,
		Role:   string(m.Role),
	}
	if m.FullName != nil {
		resp.FullName = *m.FullName
	}
	if m.Email != nil {
		resp.Email = *m.Email
	}

	return resp
}
