package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus enum
type PeriodStatus string

const (
	PeriodStatusDraft      PeriodStatus = "draft"
	PeriodStatusPreview    PeriodStatus = "preview"
	PeriodStatusApproved   PeriodStatus = "approved"
	PeriodStatusProcessing PeriodStatus = "processing"
	PeriodStatusProcessed  PeriodStatus = "processed"
)

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft    PayslipStatus = "draft"
	PayslipStatusPreview  PayslipStatus = "preview"
	PayslipStatusAdjusted PayslipStatus = "adjusted"
	PayslipStatusApproved PayslipStatus = "approved"
	PayslipStatusPaid     PayslipStatus = "paid"
)

// Period - One payroll run per (organization, year, month).
// Totals are derived from the payslip set and recomputed after every
// payslip mutation, never updated incrementally.
type Period struct {
	ID                 string
	OrganizationID     string
	Year               int
	Month              int
	Status             PeriodStatus
	PreviewStartDate   *time.Time
	AdjustmentDeadline *time.Time
	ProcessingDate     *time.Time
	Totals             PeriodTotals
	CreatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PeriodTotals - Aggregates folded from a period's payslip set.
type PeriodTotals struct {
	TotalGross           decimal.Decimal
	TotalNet             decimal.Decimal
	TotalTax             decimal.Decimal
	TotalNI              decimal.Decimal
	TotalPensionEmployee decimal.Decimal
	TotalPensionEmployer decimal.Decimal
	EmployeeCount        int
}

// Payslip - One per (period, employee). TaxCode is a snapshot taken at
// generation time; PensionPercent is the rate actually applied and may
// diverge from the employee default once the employee adjusts it.
type Payslip struct {
	ID                string
	PeriodID          string
	EmployeeID        string
	BaseSalary        decimal.Decimal
	Bonus             decimal.Decimal
	OtherAdditions    decimal.Decimal
	GrossPay          decimal.Decimal
	PensionPercent    decimal.Decimal
	PensionEmployee   decimal.Decimal
	PensionEmployer   decimal.Decimal
	TaxablePay        decimal.Decimal
	IncomeTax         decimal.Decimal
	NationalInsurance decimal.Decimal
	OtherDeductions   decimal.Decimal
	TotalDeductions   decimal.Decimal
	NetPay            decimal.Decimal
	Status            PayslipStatus
	EmployeeAdjusted  bool
	AdjustmentNote    *string
	TaxCode           string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
	Department    *string
	PeriodYear    int
	PeriodMonth   int
	PeriodStatus  PeriodStatus
	Bonuses       []Bonus
}

// Bonus - Child of a payslip; adding, editing or removing one triggers
// a payslip recalculation.
type Bonus struct {
	ID          string
	PayslipID   string
	Description string
	Amount      decimal.Decimal
	CreatedBy   *string
	CreatedAt   time.Time
}

// Adjustment - Audit row written when an employee changes their pension
// rate during preview.
type Adjustment struct {
	ID                     string
	PayslipID              string
	EmployeeID             string
	PreviousPensionPercent decimal.Decimal
	NewPensionPercent      decimal.Decimal
	PreviousNetPay         decimal.Decimal
	NewNetPay              decimal.Decimal
	Reason                 *string
	CreatedAt              time.Time
}

// Breakdown - Fully itemized monthly payslip computation result. Every
// monetary field is rounded to 2 decimal places. EmployerNI is a company
// cost, reported but never deducted from the employee.
type Breakdown struct {
	BaseSalary        decimal.Decimal
	Bonus             decimal.Decimal
	OtherAdditions    decimal.Decimal
	GrossPay          decimal.Decimal
	PensionPercent    decimal.Decimal
	PensionEmployee   decimal.Decimal
	PensionEmployer   decimal.Decimal
	TaxablePay        decimal.Decimal
	IncomeTax         decimal.Decimal
	NationalInsurance decimal.Decimal
	EmployerNI        decimal.Decimal
	OtherDeductions   decimal.Decimal
	TotalDeductions   decimal.Decimal
	NetPay            decimal.Decimal
}
