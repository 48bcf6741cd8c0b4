package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodDates carries the optional schedule dates set when a period moves
// between statuses. A nil field leaves the stored value untouched.
type PeriodDates struct {
	PreviewStartDate   *time.Time
	AdjustmentDeadline *time.Time
	ProcessingDate     *time.Time
}

// PayrollRepository defines data access for periods, payslips, bonuses and
// adjustment audit rows. All methods scope by organizationID where the row
// is reachable from outside a period, to prevent cross-tenant access.
type PayrollRepository interface {
	// Periods
	CreatePeriod(ctx context.Context, period Period) (Period, error)
	GetPeriodByID(ctx context.Context, id string, organizationID string) (Period, error)
	GetPeriodForUpdate(ctx context.Context, id string, organizationID string) (Period, error)
	ListPeriods(ctx context.Context, organizationID string) ([]Period, error)
	ListPeriodsByStatus(ctx context.Context, organizationID string, statuses []PeriodStatus) ([]Period, error)
	UpdatePeriodStatus(ctx context.Context, id string, organizationID string, status PeriodStatus, dates PeriodDates) error
	ClearPreviewDates(ctx context.Context, id string, organizationID string) error
	UpdatePeriodTotals(ctx context.Context, id string, totals PeriodTotals) error
	DeletePeriod(ctx context.Context, id string, organizationID string) error

	// Payslips
	ReplacePayslips(ctx context.Context, periodID string, payslips []Payslip) error
	InsertPayslip(ctx context.Context, payslip Payslip) (Payslip, error)
	GetPayslipByID(ctx context.Context, id string) (Payslip, error)
	GetPayslipForEmployee(ctx context.Context, id string, employeeID string) (Payslip, error)
	ListPayslipsByPeriod(ctx context.Context, periodID string) ([]Payslip, error)
	ListPayslipsByEmployee(ctx context.Context, organizationID string, employeeID string) ([]Payslip, error)
	UpdatePayslipBreakdown(ctx context.Context, id string, b Breakdown) error
	SetPayslipAdjusted(ctx context.Context, id string, b Breakdown, note *string) error
	SetPayslipStatuses(ctx context.Context, periodID string, from []PayslipStatus, to PayslipStatus) error
	ResetPayslipsToDraft(ctx context.Context, periodID string) error
	DeletePayslip(ctx context.Context, id string, periodID string) error
	DeletePayslipByEmployee(ctx context.Context, periodID string, employeeID string) error

	// Bonuses
	CreateBonus(ctx context.Context, bonus Bonus) (Bonus, error)
	CreateBonuses(ctx context.Context, bonuses []Bonus) error
	GetBonusByID(ctx context.Context, id string, organizationID string) (Bonus, error)
	ListBonusesByPayslip(ctx context.Context, payslipID string) ([]Bonus, error)
	UpdateBonus(ctx context.Context, id string, description string, amount decimal.Decimal) error
	DeleteBonus(ctx context.Context, id string) error

	// Adjustments
	CreateAdjustment(ctx context.Context, adjustment Adjustment) error
}
