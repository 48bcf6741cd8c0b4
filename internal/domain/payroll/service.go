package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// PayrollService defines the admin-facing payroll operations. The caller's
// identity comes from the JWT context; organization admin membership is
// checked on every call.
type PayrollService interface {
	// Periods
	CreatePeriod(ctx context.Context, organizationID string, req CreatePeriodRequest) (PeriodResponse, error)
	ListPeriods(ctx context.Context, organizationID string) ([]PeriodResponse, error)
	GetPeriod(ctx context.Context, organizationID string, periodID string) (PeriodDetailResponse, error)
	UpdatePeriodStatus(ctx context.Context, organizationID string, periodID string, req UpdatePeriodStatusRequest) error
	RevertPeriodToDraft(ctx context.Context, organizationID string, periodID string) error
	DeletePeriod(ctx context.Context, organizationID string, periodID string, force bool) error

	// Payslips
	GeneratePayslips(ctx context.Context, organizationID string, periodID string) (GeneratePayslipsResponse, error)
	RegeneratePayslip(ctx context.Context, organizationID string, periodID string, employeeID string) error
	DeletePayslip(ctx context.Context, organizationID string, periodID string, payslipID string) error

	// Bonuses
	AddBonus(ctx context.Context, organizationID string, payslipID string, req AddBonusRequest) error
	AddBonusToAll(ctx context.Context, organizationID string, periodID string, req AddBonusRequest) (GeneratePayslipsResponse, error)
	UpdateBonus(ctx context.Context, organizationID string, req UpdateBonusRequest) error
	DeleteBonus(ctx context.Context, organizationID string, bonusID string) error
}

// PayslipService defines the employee-facing self-service operations.
type PayslipService interface {
	// ListMyPayslips returns the caller's payslips across all periods of
	// the organization, newest first, with bonus line items attached.
	ListMyPayslips(ctx context.Context, organizationID string) ([]PayslipResponse, error)

	// CurrentPayslip returns the preview payslip if one exists, otherwise
	// the most recent payslip.
	CurrentPayslip(ctx context.Context, organizationID string) (PayslipResponse, error)

	// CanAdjustPension reports whether the caller may adjust the pension
	// rate on the given payslip right now.
	CanAdjustPension(ctx context.Context, organizationID string, payslipID string) (bool, error)

	// AdjustPension applies a new pension percent to the caller's payslip,
	// records the adjustment, and updates the stored default so future
	// periods start from the new rate.
	AdjustPension(ctx context.Context, organizationID string, payslipID string, req AdjustPensionRequest) (AdjustPensionResponse, error)
}

// AllowedPensionRange returns the inclusive bounds an employee may choose
// for their pension contribution percent.
func AllowedPensionRange() (min, max decimal.Decimal) {
	return decimal.NewFromInt(3), decimal.NewFromInt(10)
}
