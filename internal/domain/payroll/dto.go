package payroll

import (
	"github.com/payadjust/payadjust-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PERIOD DTOs ==========

type CreatePeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2020 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

var periodStatuses = []string{
	string(PeriodStatusDraft),
	string(PeriodStatusPreview),
	string(PeriodStatusApproved),
	string(PeriodStatusProcessing),
	string(PeriodStatusProcessed),
}

type UpdatePeriodStatusRequest struct {
	Status             string  `json:"status"`
	PreviewStartDate   *string `json:"preview_start_date,omitempty"`
	AdjustmentDeadline *string `json:"adjustment_deadline,omitempty"`
	ProcessingDate     *string `json:"processing_date,omitempty"`
}

func (r *UpdatePeriodStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, periodStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of draft, preview, approved, processing, processed"})
	}
	if r.PreviewStartDate != nil {
		if _, ok := validator.IsValidDateTime(*r.PreviewStartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "preview_start_date", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.AdjustmentDeadline != nil {
		if _, ok := validator.IsValidDateTime(*r.AdjustmentDeadline); !ok {
			errs = append(errs, validator.ValidationError{Field: "adjustment_deadline", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.ProcessingDate != nil {
		if _, ok := validator.IsValidDateTime(*r.ProcessingDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "processing_date", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID                   string          `json:"id"`
	OrganizationID       string          `json:"organization_id"`
	Year                 int             `json:"year"`
	Month                int             `json:"month"`
	Status               string          `json:"status"`
	PreviewStartDate     *string         `json:"preview_start_date,omitempty"`
	AdjustmentDeadline   *string         `json:"adjustment_deadline,omitempty"`
	ProcessingDate       *string         `json:"processing_date,omitempty"`
	TotalGross           decimal.Decimal `json:"total_gross"`
	TotalNet             decimal.Decimal `json:"total_net"`
	TotalTax             decimal.Decimal `json:"total_tax"`
	TotalNI              decimal.Decimal `json:"total_ni"`
	TotalPensionEmployee decimal.Decimal `json:"total_pension_employee"`
	TotalPensionEmployer decimal.Decimal `json:"total_pension_employer"`
	EmployeeCount        int             `json:"employee_count"`
	CreatedAt            string          `json:"created_at"`
}

type PeriodDetailResponse struct {
	Period   PeriodResponse    `json:"period"`
	Payslips []PayslipResponse `json:"payslips"`
}

type GeneratePayslipsResponse struct {
	Count int `json:"count"`
}

// ========== PAYSLIP DTOs ==========

type PayslipResponse struct {
	ID                string          `json:"id"`
	PeriodID          string          `json:"payroll_period_id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      *string         `json:"employee_name,omitempty"`
	EmployeeEmail     *string         `json:"employee_email,omitempty"`
	Department        *string         `json:"department,omitempty"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	Bonus             decimal.Decimal `json:"bonus"`
	OtherAdditions    decimal.Decimal `json:"other_additions"`
	GrossPay          decimal.Decimal `json:"gross_pay"`
	PensionPercent    decimal.Decimal `json:"pension_percent"`
	PensionEmployee   decimal.Decimal `json:"pension_employee"`
	PensionEmployer   decimal.Decimal `json:"pension_employer"`
	TaxablePay        decimal.Decimal `json:"taxable_pay"`
	IncomeTax         decimal.Decimal `json:"income_tax"`
	NationalInsurance decimal.Decimal `json:"national_insurance"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetPay            decimal.Decimal `json:"net_pay"`
	Status            string          `json:"status"`
	EmployeeAdjusted  bool            `json:"employee_adjusted"`
	AdjustmentNote    *string         `json:"adjustment_note,omitempty"`
	TaxCode           string          `json:"tax_code"`
	PeriodYear        int             `json:"period_year,omitempty"`
	PeriodMonth       int             `json:"period_month,omitempty"`
	PeriodStatus      string          `json:"period_status,omitempty"`
	Bonuses           []BonusResponse `json:"bonuses"`
	CreatedAt         string          `json:"created_at"`
}

// ========== BONUS DTOs ==========

type AddBonusRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *AddBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBonusRequest struct {
	ID          string
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *UpdateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusResponse struct {
	ID          string          `json:"id"`
	PayslipID   string          `json:"payslip_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"created_at"`
}

// ========== ADJUSTMENT DTOs ==========

type AdjustPensionRequest struct {
	NewPensionPercent decimal.Decimal `json:"new_pension_percent"`
	Reason            *string         `json:"reason,omitempty"`
}

type AdjustPensionResponse struct {
	NewNetPay decimal.Decimal `json:"new_net_pay"`
}

type CanAdjustResponse struct {
	CanAdjust bool `json:"can_adjust"`
}
