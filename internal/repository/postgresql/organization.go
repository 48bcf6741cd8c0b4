package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
)

type organizationRepository struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (id, name, slug, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, slug, created_by, created_at, updated_at
	`

	var o organization.Organization
	err := q.QueryRow(ctx, query, uuid.New().String(), org.Name, org.Slug, org.CreatedBy).Scan(
		&o.ID, &o.Name, &o.Slug, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uq_organization_slug") {
			return organization.Organization{}, organization.ErrSlugAlreadyExists
		}
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return o, nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, slug, created_by, created_at, updated_at FROM organizations WHERE id = $1`

	var o organization.Organization
	err := q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.Slug, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return o, nil
}

func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, slug, created_by, created_at, updated_at FROM organizations WHERE slug = $1`

	var o organization.Organization
	err := q.QueryRow(ctx, query, slug).Scan(&o.ID, &o.Name, &o.Slug, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization by slug: %w", err)
	}

	return o, nil
}

func (r *organizationRepository) ListByUser(ctx context.Context, userID string) ([]organization.Organization, []organization.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.name, o.slug, o.created_by, o.created_at, o.updated_at, m.role
		FROM organizations o
		JOIN organization_members m ON m.organization_id = o.id
		WHERE m.user_id = $1
		ORDER BY o.name
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []organization.Organization
	var roles []organization.Role
	for rows.Next() {
		var o organization.Organization
		var role organization.Role
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt, &role); err != nil {
			return nil, nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, o)
		roles = append(roles, role)
	}

	return orgs, roles, rows.Err()
}

func (r *organizationRepository) AddMember(ctx context.Context, member organization.Member) (organization.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO organization_members (id, organization_id, user_id, role)
			VALUES ($1, $2, $3, $4)
			RETURNING id, organization_id, user_id, role, created_at
		)
		SELECT i.id, i.organization_id, i.user_id, i.role, i.created_at, u.full_name, u.email
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`

	var m organization.Member
	err := q.QueryRow(ctx, query, uuid.New().String(), member.OrganizationID, member.UserID, member.Role).Scan(
		&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt, &m.FullName, &m.Email,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uq_organization_member") {
			return organization.Member{}, organization.ErrMemberAlreadyExists
		}
		return organization.Member{}, fmt.Errorf("failed to add organization member: %w", err)
	}

	return m, nil
}

func (r *organizationRepository) GetMember(ctx context.Context, organizationID string, userID string) (organization.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.organization_id, m.user_id, m.role, m.created_at, u.full_name, u.email
		FROM organization_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.organization_id = $1 AND m.user_id = $2
	`

	var m organization.Member
	err := q.QueryRow(ctx, query, organizationID, userID).Scan(
		&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt, &m.FullName, &m.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Member{}, organization.ErrNotAMember
		}
		return organization.Member{}, fmt.Errorf("failed to get organization member: %w", err)
	}

	return m, nil
}

func (r *organizationRepository) ListMembers(ctx context.Context, organizationID string) ([]organization.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.organization_id, m.user_id, m.role, m.created_at, u.full_name, u.email
		FROM organization_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.organization_id = $1
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization members: %w", err)
	}
	defer rows.Close()

	var members []organization.Member
	for rows.Next() {
		var m organization.Member
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt, &m.FullName, &m.Email); err != nil {
			return nil, fmt.Errorf("failed to scan organization member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}
