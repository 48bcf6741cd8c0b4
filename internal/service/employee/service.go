package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/validator"
)

// Defaults applied when an upsert omits the pension rates, matching the
// auto-enrolment minimums used for new records.
var (
	defaultEmployeePension = decimal.NewFromInt(5)
	defaultEmployerPension = decimal.NewFromInt(3)
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	orgRepo      organization.OrganizationRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	orgRepo organization.OrganizationRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
	}
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

func (s *EmployeeServiceImpl) requireAdmin(ctx context.Context, organizationID string) (string, error) {
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

// ========== ADMIN ==========

func (s *EmployeeServiceImpl) UpsertEmployee(ctx context.Context, organizationID string, req employee.UpsertEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The target user must already be an organization member.
	if _, err := s.orgRepo.GetMember(ctx, organizationID, req.UserID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	pensionPercent := defaultEmployeePension
	if req.DefaultPensionPercent != nil {
		pensionPercent = *req.DefaultPensionPercent
	}
	employerPercent := defaultEmployerPension
	if req.EmployerPensionPercent != nil {
		employerPercent = *req.EmployerPensionPercent
	}

	var startDate *time.Time
	if req.StartDate != nil {
		if t, ok := validator.IsValidDate(*req.StartDate); ok {
			startDate = &t
		}
	}

	emp, err := s.employeeRepo.Upsert(ctx, employee.Employee{
		OrganizationID:         organizationID,
		UserID:                 req.UserID,
		AnnualSalary:           req.AnnualSalary,
		TaxCode:                req.TaxCode,
		DefaultPensionPercent:  pensionPercent,
		EmployerPensionPercent: employerPercent,
		Department:             req.Department,
		StartDate:              startDate,
		BankAccountName:        req.BankAccountName,
		BankAccountNumber:      req.BankAccountNumber,
		BankSortCode:           req.BankSortCode,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, organizationID string, userID string) (employee.EmployeeResponse, error) {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, organizationID, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, organizationID string) ([]employee.EmployeeResponse, error) {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, len(employees))
	for i, emp := range employees {
		responses[i] = toEmployeeResponse(emp)
	}

	return responses, nil
}

func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, organizationID string, userID string) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return s.employeeRepo.SetActive(ctx, organizationID, userID, false)
}

func (s *EmployeeServiceImpl) ReactivateEmployee(ctx context.Context, organizationID string, userID string) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return s.employeeRepo.SetActive(ctx, organizationID, userID, true)
}

// ========== SELF SERVICE ==========

func (s *EmployeeServiceImpl) MyDetails(ctx context.Context, organizationID string) (employee.EmployeeResponse, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.orgRepo.GetMember(ctx, organizationID, userID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, organizationID, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	var startDate *string
	if e.StartDate != nil {
		s := e.StartDate.Format("2006-01-02")
		startDate = &s
	}

	resp := employee.EmployeeResponse{
		ID:                     e.ID,
		OrganizationID:         e.OrganizationID,
		UserID:                 e.UserID,
		AnnualSalary:           e.AnnualSalary,
		TaxCode:                e.TaxCode,
		DefaultPensionPercent:  e.DefaultPensionPercent,
		EmployerPensionPercent: e.EmployerPensionPercent,
		Department:             e.Department,
		StartDate:              startDate,
		BankAccountName:        e.BankAccountName,
		BankAccountNumber:      e.BankAccountNumber,
		BankSortCode:           e.BankSortCode,
		IsActive:               e.IsActive,
	}
	if e.FullName != nil {
		resp.FullName = *e.FullName
	}
	if e.Email != nil {
		resp.Email = *e.Email
	}

	return resp
}
