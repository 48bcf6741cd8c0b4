package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee - Payroll master data for one member of an organization.
// UserID links the record to the login account the payslips belong to.
type Employee struct {
	ID                     string
	OrganizationID         string
	UserID                 string
	AnnualSalary           decimal.Decimal
	TaxCode                string
	DefaultPensionPercent  decimal.Decimal
	EmployerPensionPercent decimal.Decimal
	Department             *string
	StartDate              *time.Time
	BankAccountName        *string
	BankAccountNumber      *string
	BankSortCode           *string
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// Joined fields
	FullName *string
	Email    *string
}
