package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/validator"
	"github.com/payadjust/payadjust-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	orgRepo      organization.OrganizationRepository
	calc         *Calculator
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	orgRepo organization.OrganizationRepository,
	calc *Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
		calc:         calc,
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

// requireAdmin resolves the caller from the JWT and checks they hold the
// admin role in the organization.
func (s *PayrollServiceImpl) requireAdmin(ctx context.Context, organizationID string) (string, error) {
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

// ========== PERIODS ==========

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, organizationID string, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	userID, err := s.requireAdmin(ctx, organizationID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.payrollRepo.CreatePeriod(ctx, payroll.Period{
		OrganizationID: organizationID,
		Year:           req.Year,
		Month:          req.Month,
		CreatedBy:      &userID,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return toPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, organizationID string) ([]payroll.PeriodResponse, error) {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return nil, err
	}

	periods, err := s.payrollRepo.ListPeriods(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PeriodResponse, len(periods))
	for i, p := range periods {
		responses[i] = toPeriodResponse(p)
	}

	return responses, nil
}

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, organizationID string, periodID string) (payroll.PeriodDetailResponse, error) {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return payroll.PeriodDetailResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID, organizationID)
	if err != nil {
		return payroll.PeriodDetailResponse{}, err
	}

	payslips, err := s.payrollRepo.ListPayslipsByPeriod(ctx, periodID)
	if err != nil {
		return payroll.PeriodDetailResponse{}, err
	}

	responses := make([]payroll.PayslipResponse, len(payslips))
	for i, p := range payslips {
		responses[i] = toPayslipResponse(p)
	}

	return payroll.PeriodDetailResponse{
		Period:   toPeriodResponse(period),
		Payslips: responses,
	}, nil
}

func (s *PayrollServiceImpl) UpdatePeriodStatus(ctx context.Context, organizationID string, periodID string, req payroll.UpdatePeriodStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	target := payroll.PeriodStatus(req.Status)

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}

		if !CanTransition(period.Status, target) {
			return payroll.ErrInvalidTransition
		}

		// Moving back to draft is a full revert: schedule dates are
		// wiped and employee adjustments discarded.
		if target == payroll.PeriodStatusDraft {
			if err := s.payrollRepo.UpdatePeriodStatus(txCtx, periodID, organizationID, target, payroll.PeriodDates{}); err != nil {
				return err
			}
			if err := s.payrollRepo.ClearPreviewDates(txCtx, periodID, organizationID); err != nil {
				return err
			}
			return s.payrollRepo.ResetPayslipsToDraft(txCtx, periodID)
		}

		switch target {
		case payroll.PeriodStatusPreview:
			err = s.payrollRepo.SetPayslipStatuses(txCtx, periodID, []payroll.PayslipStatus{payroll.PayslipStatusDraft}, payroll.PayslipStatusPreview)
		case payroll.PeriodStatusApproved:
			err = s.payrollRepo.SetPayslipStatuses(txCtx, periodID, []payroll.PayslipStatus{payroll.PayslipStatusPreview, payroll.PayslipStatusAdjusted}, payroll.PayslipStatusApproved)
		case payroll.PeriodStatusProcessed:
			err = s.payrollRepo.SetPayslipStatuses(txCtx, periodID,
				[]payroll.PayslipStatus{payroll.PayslipStatusDraft, payroll.PayslipStatusPreview, payroll.PayslipStatusAdjusted, payroll.PayslipStatusApproved},
				payroll.PayslipStatusPaid)
		}
		if err != nil {
			return err
		}

		return s.payrollRepo.UpdatePeriodStatus(txCtx, periodID, organizationID, target, parsePeriodDates(req))
	})
}

func (s *PayrollServiceImpl) RevertPeriodToDraft(ctx context.Context, organizationID string, periodID string) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}
		if period.Status != payroll.PeriodStatusPreview {
			return payroll.ErrPeriodNotPreview
		}

		if err := s.payrollRepo.UpdatePeriodStatus(txCtx, periodID, organizationID, payroll.PeriodStatusDraft, payroll.PeriodDates{}); err != nil {
			return err
		}
		if err := s.payrollRepo.ClearPreviewDates(txCtx, periodID, organizationID); err != nil {
			return err
		}

		return s.payrollRepo.ResetPayslipsToDraft(txCtx, periodID)
	})
}

func (s *PayrollServiceImpl) DeletePeriod(ctx context.Context, organizationID string, periodID string, force bool) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}

		if err := CanDeletePeriod(period.Status, force); err != nil {
			return err
		}

		return s.payrollRepo.DeletePeriod(txCtx, periodID, organizationID)
	})
}

// ========== PAYSLIPS ==========

func (s *PayrollServiceImpl) GeneratePayslips(ctx context.Context, organizationID string, periodID string) (payroll.GeneratePayslipsResponse, error) {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return payroll.GeneratePayslipsResponse{}, err
	}

	var count int
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}
		if !CanGeneratePayslips(period.Status) {
			return payroll.ErrPeriodNotDraft
		}

		employees, err := s.employeeRepo.ListActiveByOrganization(txCtx, organizationID)
		if err != nil {
			return err
		}
		if len(employees) == 0 {
			return payroll.ErrNoActiveEmployees
		}

		payslips := make([]payroll.Payslip, len(employees))
		for i, emp := range employees {
			breakdown := s.calc.CalculatePayslip(PayInput{
				AnnualSalary:           emp.AnnualSalary,
				TaxCode:                emp.TaxCode,
				PensionPercent:         emp.DefaultPensionPercent,
				EmployerPensionPercent: emp.EmployerPensionPercent,
			})
			payslips[i] = newPayslip(periodID, emp.ID, emp.TaxCode, payroll.PayslipStatusDraft, breakdown)
		}

		if err := s.payrollRepo.ReplacePayslips(txCtx, periodID, payslips); err != nil {
			return err
		}

		count = len(payslips)
		return s.payrollRepo.UpdatePeriodTotals(txCtx, periodID, RecomputeTotals(payslips))
	})
	if err != nil {
		return payroll.GeneratePayslipsResponse{}, err
	}

	return payroll.GeneratePayslipsResponse{Count: count}, nil
}

// RegeneratePayslip rebuilds one employee's payslip from their current
// master data. Any employee pension adjustment on the old payslip is
// discarded along with its bonus rows.
func (s *PayrollServiceImpl) RegeneratePayslip(ctx context.Context, organizationID string, periodID string, employeeID string) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}
		if !CanModifyPayslip(period.Status) {
			return payroll.ErrPeriodLocked
		}

		emp, err := s.employeeRepo.GetByID(txCtx, employeeID, organizationID)
		if err != nil {
			return err
		}

		breakdown := s.calc.CalculatePayslip(PayInput{
			AnnualSalary:           emp.AnnualSalary,
			TaxCode:                emp.TaxCode,
			PensionPercent:         emp.DefaultPensionPercent,
			EmployerPensionPercent: emp.EmployerPensionPercent,
		})

		if err := s.payrollRepo.DeletePayslipByEmployee(txCtx, periodID, employeeID); err != nil && !errors.Is(err, payroll.ErrPayslipNotFound) {
			return err
		}

		status := payroll.PayslipStatusDraft
		if period.Status == payroll.PeriodStatusPreview {
			status = payroll.PayslipStatusPreview
		}

		if _, err := s.payrollRepo.InsertPayslip(txCtx, newPayslip(periodID, emp.ID, emp.TaxCode, status, breakdown)); err != nil {
			return err
		}

		return s.recalculatePeriodTotals(txCtx, periodID)
	})
}

func (s *PayrollServiceImpl) DeletePayslip(ctx context.Context, organizationID string, periodID string, payslipID string) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}
		if !CanModifyPayslip(period.Status) {
			return payroll.ErrPeriodLocked
		}

		if err := s.payrollRepo.DeletePayslip(txCtx, payslipID, periodID); err != nil {
			return err
		}

		return s.recalculatePeriodTotals(txCtx, periodID)
	})
}

// ========== BONUSES ==========

func (s *PayrollServiceImpl) AddBonus(ctx context.Context, organizationID string, payslipID string, req payroll.AddBonusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := s.requireAdmin(ctx, organizationID)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		payslip, err := s.payrollRepo.GetPayslipByID(txCtx, payslipID)
		if err != nil {
			return err
		}

		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, payslip.PeriodID, organizationID)
		if err != nil {
			return err
		}
		if !CanModifyPayslip(period.Status) {
			return payroll.ErrPeriodLocked
		}

		if _, err := s.payrollRepo.CreateBonus(txCtx, payroll.Bonus{
			PayslipID:   payslipID,
			Description: strings.TrimSpace(req.Description),
			Amount:      round2(req.Amount),
			CreatedBy:   &userID,
		}); err != nil {
			return err
		}

		if err := s.recalculatePayslipWithBonuses(txCtx, payslip, organizationID); err != nil {
			return err
		}

		return s.recalculatePeriodTotals(txCtx, period.ID)
	})
}

func (s *PayrollServiceImpl) AddBonusToAll(ctx context.Context, organizationID string, periodID string, req payroll.AddBonusRequest) (payroll.GeneratePayslipsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayslipsResponse{}, err
	}

	userID, err := s.requireAdmin(ctx, organizationID)
	if err != nil {
		return payroll.GeneratePayslipsResponse{}, err
	}

	var count int
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}
		if !CanModifyPayslip(period.Status) {
			return payroll.ErrPeriodLocked
		}

		payslips, err := s.payrollRepo.ListPayslipsByPeriod(txCtx, periodID)
		if err != nil {
			return err
		}
		if len(payslips) == 0 {
			return payroll.ErrNoPayslipsInPeriod
		}

		bonuses := make([]payroll.Bonus, len(payslips))
		for i, p := range payslips {
			bonuses[i] = payroll.Bonus{
				PayslipID:   p.ID,
				Description: strings.TrimSpace(req.Description),
				Amount:      round2(req.Amount),
				CreatedBy:   &userID,
			}
		}
		if err := s.payrollRepo.CreateBonuses(txCtx, bonuses); err != nil {
			return err
		}

		for _, p := range payslips {
			if err := s.recalculatePayslipWithBonuses(txCtx, p, organizationID); err != nil {
				return err
			}
		}

		count = len(payslips)
		return s.recalculatePeriodTotals(txCtx, periodID)
	})
	if err != nil {
		return payroll.GeneratePayslipsResponse{}, err
	}

	return payroll.GeneratePayslipsResponse{Count: count}, nil
}

func (s *PayrollServiceImpl) UpdateBonus(ctx context.Context, organizationID string, req payroll.UpdateBonusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		bonus, err := s.payrollRepo.GetBonusByID(txCtx, req.ID, organizationID)
		if err != nil {
			return err
		}

		payslip, err := s.payrollRepo.GetPayslipByID(txCtx, bonus.PayslipID)
		if err != nil {
			return err
		}

		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, payslip.PeriodID, organizationID)
		if err != nil {
			return err
		}
		if !CanModifyPayslip(period.Status) {
			return payroll.ErrPeriodLocked
		}

		if err := s.payrollRepo.UpdateBonus(txCtx, req.ID, strings.TrimSpace(req.Description), round2(req.Amount)); err != nil {
			return err
		}

		if err := s.recalculatePayslipWithBonuses(txCtx, payslip, organizationID); err != nil {
			return err
		}

		return s.recalculatePeriodTotals(txCtx, period.ID)
	})
}

func (s *PayrollServiceImpl) DeleteBonus(ctx context.Context, organizationID string, bonusID string) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		bonus, err := s.payrollRepo.GetBonusByID(txCtx, bonusID, organizationID)
		if err != nil {
			return err
		}

		payslip, err := s.payrollRepo.GetPayslipByID(txCtx, bonus.PayslipID)
		if err != nil {
			return err
		}

		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, payslip.PeriodID, organizationID)
		if err != nil {
			return err
		}
		if !CanModifyPayslip(period.Status) {
			return payroll.ErrPeriodLocked
		}

		if err := s.payrollRepo.DeleteBonus(txCtx, bonusID); err != nil {
			return err
		}

		if err := s.recalculatePayslipWithBonuses(txCtx, payslip, organizationID); err != nil {
			return err
		}

		return s.recalculatePeriodTotals(txCtx, period.ID)
	})
}

// ========== RECALCULATION ==========

// recalculatePayslipWithBonuses rebuilds a payslip's breakdown from the
// employee's master data and the current bonus rows. The payslip's own
// pension_percent is preserved so an employee adjustment survives bonus
// edits.
func (s *PayrollServiceImpl) recalculatePayslipWithBonuses(ctx context.Context, payslip payroll.Payslip, organizationID string) error {
	bonuses, err := s.payrollRepo.ListBonusesByPayslip(ctx, payslip.ID)
	if err != nil {
		return err
	}

	totalBonus := decimal.Zero
	for _, b := range bonuses {
		totalBonus = totalBonus.Add(b.Amount)
	}

	emp, err := s.employeeRepo.GetByID(ctx, payslip.EmployeeID, organizationID)
	if err != nil {
		return err
	}

	breakdown := s.calc.CalculatePayslip(PayInput{
		AnnualSalary:           emp.AnnualSalary,
		TaxCode:                emp.TaxCode,
		PensionPercent:         payslip.PensionPercent,
		EmployerPensionPercent: emp.EmployerPensionPercent,
		Bonus:                  totalBonus,
		OtherAdditions:         payslip.OtherAdditions,
		OtherDeductions:        payslip.OtherDeductions,
	})

	return s.payrollRepo.UpdatePayslipBreakdown(ctx, payslip.ID, breakdown)
}

func (s *PayrollServiceImpl) recalculatePeriodTotals(ctx context.Context, periodID string) error {
	payslips, err := s.payrollRepo.ListPayslipsByPeriod(ctx, periodID)
	if err != nil {
		return err
	}
	return s.payrollRepo.UpdatePeriodTotals(ctx, periodID, RecomputeTotals(payslips))
}

// ========== MAPPERS ==========

func newPayslip(periodID string, employeeID string, taxCode string, status payroll.PayslipStatus, b payroll.Breakdown) payroll.Payslip {
	return payroll.Payslip{
		PeriodID:          periodID,
		EmployeeID:        employeeID,
		BaseSalary:        b.BaseSalary,
		Bonus:             b.Bonus,
		OtherAdditions:    b.OtherAdditions,
		GrossPay:          b.GrossPay,
		PensionPercent:    b.PensionPercent,
		PensionEmployee:   b.PensionEmployee,
		PensionEmployer:   b.PensionEmployer,
		TaxablePay:        b.TaxablePay,
		IncomeTax:         b.IncomeTax,
		NationalInsurance: b.NationalInsurance,
		OtherDeductions:   b.OtherDeductions,
		TotalDeductions:   b.TotalDeductions,
		NetPay:            b.NetPay,
		Status:            status,
		TaxCode:           taxCode,
	}
}

func parsePeriodDates(req payroll.UpdatePeriodStatusRequest) payroll.PeriodDates {
	var dates payroll.PeriodDates
	if req.PreviewStartDate != nil {
		if t, ok := validator.IsValidDateTime(*req.PreviewStartDate); ok {
			dates.PreviewStartDate = &t
		}
	}
	if req.AdjustmentDeadline != nil {
		if t, ok := validator.IsValidDateTime(*req.AdjustmentDeadline); ok {
			dates.AdjustmentDeadline = &t
		}
	}
	if req.ProcessingDate != nil {
		if t, ok := validator.IsValidDateTime(*req.ProcessingDate); ok {
			dates.ProcessingDate = &t
		}
	}
	return dates
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func toPeriodResponse(p payroll.Period) payroll.PeriodResponse {
	return payroll.PeriodResponse{
		ID:                   p.ID,
		OrganizationID:       p.OrganizationID,
		Year:                 p.Year,
		Month:                p.Month,
		Status:               string(p.Status),
		PreviewStartDate:     formatTimePtr(p.PreviewStartDate),
		AdjustmentDeadline:   formatTimePtr(p.AdjustmentDeadline),
		ProcessingDate:       formatTimePtr(p.ProcessingDate),
		TotalGross:           p.Totals.TotalGross,
		TotalNet:             p.Totals.TotalNet,
		TotalTax:             p.Totals.TotalTax,
		TotalNI:              p.Totals.TotalNI,
		TotalPensionEmployee: p.Totals.TotalPensionEmployee,
		TotalPensionEmployer: p.Totals.TotalPensionEmployer,
		EmployeeCount:        p.Totals.EmployeeCount,
		CreatedAt:            formatTime(p.CreatedAt),
	}
}

func toPayslipResponse(p payroll.Payslip) payroll.PayslipResponse {
	bonuses := make([]payroll.BonusResponse, len(p.Bonuses))
	for i, b := range p.Bonuses {
		bonuses[i] = toBonusResponse(b)
	}

	return payroll.PayslipResponse{
		ID:                p.ID,
		PeriodID:          p.PeriodID,
		EmployeeID:        p.EmployeeID,
		EmployeeName:      p.EmployeeName,
		EmployeeEmail:     p.EmployeeEmail,
		Department:        p.Department,
		BaseSalary:        p.BaseSalary,
		Bonus:             p.Bonus,
		OtherAdditions:    p.OtherAdditions,
		GrossPay:          p.GrossPay,
		PensionPercent:    p.PensionPercent,
		PensionEmployee:   p.PensionEmployee,
		PensionEmployer:   p.PensionEmployer,
		TaxablePay:        p.TaxablePay,
		IncomeTax:         p.IncomeTax,
		NationalInsurance: p.NationalInsurance,
		OtherDeductions:   p.OtherDeductions,
		TotalDeductions:   p.TotalDeductions,
		NetPay:            p.NetPay,
		Status:            string(p.Status),
		EmployeeAdjusted:  p.EmployeeAdjusted,
		AdjustmentNote:    p.AdjustmentNote,
		TaxCode:           p.TaxCode,
		PeriodYear:        p.PeriodYear,
		PeriodMonth:       p.PeriodMonth,
		PeriodStatus:      string(p.PeriodStatus),
		Bonuses:           bonuses,
		CreatedAt:         formatTime(p.CreatedAt),
	}
}

func toBonusResponse(b payroll.Bonus) payroll.BonusResponse {
	return payroll.BonusResponse{
		ID:          b.ID,
		PayslipID:   b.PayslipID,
		Description: b.Description,
		Amount:      b.Amount,
		CreatedAt:   formatTime(b.CreatedAt),
	}
}
