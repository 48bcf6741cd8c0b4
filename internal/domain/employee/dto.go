package employee

import (
	"github.com/payadjust/payadjust-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertEmployeeRequest struct {
	UserID                 string           `json:"user_id"`
	AnnualSalary           decimal.Decimal  `json:"annual_salary"`
	TaxCode                string           `json:"tax_code"`
	DefaultPensionPercent  *decimal.Decimal `json:"default_pension_percent,omitempty"`
	EmployerPensionPercent *decimal.Decimal `json:"employer_pension_percent,omitempty"`
	Department             *string          `json:"department,omitempty"`
	StartDate              *string          `json:"start_date,omitempty"`
	BankAccountName        *string          `json:"bank_account_name,omitempty"`
	BankAccountNumber      *string          `json:"bank_account_number,omitempty"`
	BankSortCode           *string          `json:"bank_sort_code,omitempty"`
}

func (r *UpsertEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if r.AnnualSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "annual_salary", Message: "must be non-negative"})
	}
	if !validator.IsValidTaxCode(r.TaxCode) {
		errs = append(errs, validator.ValidationError{Field: "tax_code", Message: "is not a recognized UK tax code"})
	}
	if r.DefaultPensionPercent != nil && r.DefaultPensionPercent.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_pension_percent", Message: "must be non-negative"})
	}
	if r.EmployerPensionPercent != nil && r.EmployerPensionPercent.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "employer_pension_percent", Message: "must be non-negative"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.BankSortCode != nil && !validator.IsValidSortCode(*r.BankSortCode) {
		errs = append(errs, validator.ValidationError{Field: "bank_sort_code", Message: "must be six digits, dashes optional"})
	}
	if r.BankAccountNumber != nil && !validator.IsValidAccountNumber(*r.BankAccountNumber) {
		errs = append(errs, validator.ValidationError{Field: "bank_account_number", Message: "must be eight digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                     string          `json:"id"`
	OrganizationID         string          `json:"organization_id"`
	UserID                 string          `json:"user_id"`
	FullName               string          `json:"full_name"`
	Email                  string          `json:"email"`
	AnnualSalary           decimal.Decimal `json:"annual_salary"`
	TaxCode                string          `json:"tax_code"`
	DefaultPensionPercent  decimal.Decimal `json:"default_pension_percent"`
	EmployerPensionPercent decimal.Decimal `json:"employer_pension_percent"`
	Department             *string         `json:"department,omitempty"`
	StartDate              *string         `json:"start_date,omitempty"`
	BankAccountName        *string         `json:"bank_account_name,omitempty"`
	BankAccountNumber      *string         `json:"bank_account_number,omitempty"`
	BankSortCode           *string         `json:"bank_sort_code,omitempty"`
	IsActive               bool            `json:"is_active"`
}
