package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/validator"
)

const testOrgID = "org-1"

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	byUserID map[string]employee.Employee
	upserted []employee.Employee
}

func (f *fakeEmployeeRepo) Upsert(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = "emp-new"
	emp.IsActive = true
	f.upserted = append(f.upserted, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, organizationID string, userID string) (employee.Employee, error) {
	emp, ok := f.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeOrgRepo struct {
	organization.OrganizationRepository

	members map[string]organization.Role
}

func (f *fakeOrgRepo) GetMember(ctx context.Context, organizationID string, userID string) (organization.Member, error) {
	role, ok := f.members[userID]
	if !ok || organizationID != testOrgID {
		return organization.Member{}, organization.ErrNotAMember
	}
	return organization.Member{OrganizationID: organizationID, UserID: userID, Role: role}, nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestEmployeeService(repo *fakeEmployeeRepo) employee.EmployeeService {
	orgRepo := &fakeOrgRepo{members: map[string]organization.Role{
		"admin-1":  organization.RoleAdmin,
		"member-1": organization.RoleMember,
	}}
	return NewEmployeeService(nil, repo, orgRepo)
}

func TestUpsertEmployeeAppliesPensionDefaults(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	service := newTestEmployeeService(repo)

	resp, err := service.UpsertEmployee(authedContext(t, "admin-1"), testOrgID, employee.UpsertEmployeeRequest{
		UserID:       "member-1",
		AnnualSalary: decimal.NewFromInt(50000),
		TaxCode:      "1257L",
	})
	require.NoError(t, err)

	assert.True(t, resp.DefaultPensionPercent.Equal(decimal.NewFromInt(5)))
	assert.True(t, resp.EmployerPensionPercent.Equal(decimal.NewFromInt(3)))
	require.Len(t, repo.upserted, 1)
	assert.Equal(t, "member-1", repo.upserted[0].UserID)
}

func TestUpsertEmployeeKeepsExplicitPensionRates(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	service := newTestEmployeeService(repo)

	pension := decimal.NewFromInt(8)
	employer := decimal.NewFromInt(6)
	resp, err := service.UpsertEmployee(authedContext(t, "admin-1"), testOrgID, employee.UpsertEmployeeRequest{
		UserID:                 "member-1",
		AnnualSalary:           decimal.NewFromInt(50000),
		TaxCode:                "1257L",
		DefaultPensionPercent:  &pension,
		EmployerPensionPercent: &employer,
	})
	require.NoError(t, err)

	assert.True(t, resp.DefaultPensionPercent.Equal(pension))
	assert.True(t, resp.EmployerPensionPercent.Equal(employer))
}

func TestUpsertEmployeeValidation(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	service := newTestEmployeeService(repo)

	_, err := service.UpsertEmployee(authedContext(t, "admin-1"), testOrgID, employee.UpsertEmployeeRequest{
		UserID:       "member-1",
		AnnualSalary: decimal.NewFromInt(-1),
		TaxCode:      "NOTACODE",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, repo.upserted)
}

func TestUpsertEmployeeRequiresAdmin(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	service := newTestEmployeeService(repo)

	_, err := service.UpsertEmployee(authedContext(t, "member-1"), testOrgID, employee.UpsertEmployeeRequest{
		UserID:       "member-1",
		AnnualSalary: decimal.NewFromInt(50000),
		TaxCode:      "1257L",
	})
	assert.ErrorIs(t, err, organization.ErrAdminRequired)
}

func TestUpsertEmployeeTargetMustBeMember(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	service := newTestEmployeeService(repo)

	_, err := service.UpsertEmployee(authedContext(t, "admin-1"), testOrgID, employee.UpsertEmployeeRequest{
		UserID:       "stranger-1",
		AnnualSalary: decimal.NewFromInt(50000),
		TaxCode:      "1257L",
	})
	assert.ErrorIs(t, err, organization.ErrNotAMember)
}

func TestMyDetails(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	name := "Bob Jones"
	repo := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{
		"member-1": {
			ID:                     "emp-1",
			OrganizationID:         testOrgID,
			UserID:                 "member-1",
			FullName:               &name,
			AnnualSalary:           decimal.NewFromInt(32000),
			TaxCode:                "1257L",
			DefaultPensionPercent:  decimal.NewFromInt(5),
			EmployerPensionPercent: decimal.NewFromInt(3),
			StartDate:              &start,
			IsActive:               true,
		},
	}}
	service := newTestEmployeeService(repo)

	resp, err := service.MyDetails(authedContext(t, "member-1"), testOrgID)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.ID)
	assert.Equal(t, "Bob Jones", resp.FullName)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2023-06-01", *resp.StartDate)
}

func TestMyDetailsRequiresMembership(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	service := newTestEmployeeService(repo)

	_, err := service.MyDetails(authedContext(t, "stranger-1"), testOrgID)
	assert.ErrorIs(t, err, organization.ErrNotAMember)

	_, err = service.MyDetails(context.Background(), testOrgID)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, organization.ErrNotAMember))
}

func TestMyDetailsNoPayrollRecord(t *testing.T) {
	repo := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{}}
	service := newTestEmployeeService(repo)

	_, err := service.MyDetails(authedContext(t, "member-1"), testOrgID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
