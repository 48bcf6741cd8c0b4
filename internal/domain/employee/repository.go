package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeRepository defines data access for employee payroll records.
// All methods scope by organizationID to prevent cross-tenant access.
type EmployeeRepository interface {
	Upsert(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, organizationID string) (Employee, error)
	GetByUserID(ctx context.Context, organizationID string, userID string) (Employee, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Employee, error)
	ListActiveByOrganization(ctx context.Context, organizationID string) ([]Employee, error)
	SetActive(ctx context.Context, organizationID string, userID string, active bool) error
	UpdateDefaultPensionPercent(ctx context.Context, organizationID string, userID string, percent decimal.Decimal) error
}

// EmployeeService defines business logic for employee payroll records.
type EmployeeService interface {
	// UpsertEmployee creates or updates payroll details for a member (admin only).
	UpsertEmployee(ctx context.Context, organizationID string, req UpsertEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves one member's payroll details (admin only).
	GetEmployee(ctx context.Context, organizationID string, userID string) (EmployeeResponse, error)

	// ListEmployees lists all members with payroll details (admin only).
	ListEmployees(ctx context.Context, organizationID string) ([]EmployeeResponse, error)

	// DeactivateEmployee excludes a member from future payroll runs (admin only).
	DeactivateEmployee(ctx context.Context, organizationID string, userID string) error

	// ReactivateEmployee re-includes a member in payroll runs (admin only).
	ReactivateEmployee(ctx context.Context, organizationID string, userID string) error

	// MyDetails returns the calling employee's own payroll details.
	MyDetails(ctx context.Context, organizationID string) (EmployeeResponse, error)
}
