package payroll

import (
	"context"
	"time"

	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
	"github.com/payadjust/payadjust-backend-go/internal/repository/postgresql"
)

// PayslipServiceImpl serves the employee self-service surface: viewing
// payslips and adjusting the pension rate during preview.
type PayslipServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	orgRepo      organization.OrganizationRepository
	calc         *Calculator

	// runInTx wraps postgresql.WithTransaction; replaceable so tests can
	// run the transactional body without a database.
	runInTx func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewPayslipService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	orgRepo organization.OrganizationRepository,
	calc *Calculator,
) payroll.PayslipService {
	s := &PayslipServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
		calc:         calc,
	}
	s.runInTx = func(ctx context.Context, fn func(txCtx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

// requireEmployee resolves the caller to their employee record in the
// organization.
func (s *PayslipServiceImpl) requireEmployee(ctx context.Context, organizationID string) (employee.Employee, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.orgRepo.GetMember(ctx, organizationID, userID); err != nil {
		return employee.Employee{}, err
	}

	return s.employeeRepo.GetByUserID(ctx, organizationID, userID)
}

func (s *PayslipServiceImpl) ListMyPayslips(ctx context.Context, organizationID string) ([]payroll.PayslipResponse, error) {
	emp, err := s.requireEmployee(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	payslips, err := s.payrollRepo.ListPayslipsByEmployee(ctx, organizationID, emp.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayslipResponse, len(payslips))
	for i, p := range payslips {
		responses[i] = toPayslipResponse(p)
	}

	return responses, nil
}

// CurrentPayslip prefers an open preview payslip; otherwise the most
// recent payslip of any status.
func (s *PayslipServiceImpl) CurrentPayslip(ctx context.Context, organizationID string) (payroll.PayslipResponse, error) {
	emp, err := s.requireEmployee(ctx, organizationID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	payslips, err := s.payrollRepo.ListPayslipsByEmployee(ctx, organizationID, emp.ID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if len(payslips) == 0 {
		return payroll.PayslipResponse{}, payroll.ErrPayslipNotFound
	}

	for _, p := range payslips {
		if p.PeriodStatus == payroll.PeriodStatusPreview {
			return toPayslipResponse(p), nil
		}
	}

	return toPayslipResponse(payslips[0]), nil
}

func (s *PayslipServiceImpl) CanAdjustPension(ctx context.Context, organizationID string, payslipID string) (bool, error) {
	emp, err := s.requireEmployee(ctx, organizationID)
	if err != nil {
		return false, err
	}

	payslip, err := s.payrollRepo.GetPayslipForEmployee(ctx, payslipID, emp.ID)
	if err != nil {
		return false, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, payslip.PeriodID, organizationID)
	if err != nil {
		return false, err
	}

	return CanAdjustPension(period.Status, period.AdjustmentDeadline, time.Now()), nil
}

// AdjustPension recomputes the payslip at the same gross with a new
// pension rate. National Insurance and other deductions are untouched;
// only the pension, tax, totals and net move. The employee's stored
// default rate follows the adjustment so future periods start from it.
func (s *PayslipServiceImpl) AdjustPension(ctx context.Context, organizationID string, payslipID string, req payroll.AdjustPensionRequest) (payroll.AdjustPensionResponse, error) {
	emp, err := s.requireEmployee(ctx, organizationID)
	if err != nil {
		return payroll.AdjustPensionResponse{}, err
	}

	minPercent, maxPercent := payroll.AllowedPensionRange()
	if req.NewPensionPercent.LessThan(minPercent) || req.NewPensionPercent.GreaterThan(maxPercent) {
		return payroll.AdjustPensionResponse{}, payroll.ErrPensionOutOfRange
	}

	var response payroll.AdjustPensionResponse
	err = s.runInTx(ctx, func(txCtx context.Context) error {
		payslip, err := s.payrollRepo.GetPayslipForEmployee(txCtx, payslipID, emp.ID)
		if err != nil {
			return err
		}

		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, payslip.PeriodID, organizationID)
		if err != nil {
			return err
		}
		if !CanAdjustPension(period.Status, period.AdjustmentDeadline, time.Now()) {
			return payroll.ErrAdjustmentClosed
		}

		gross := payslip.GrossPay
		pensionEmployee := gross.Mul(req.NewPensionPercent).Div(hundred)
		pensionEmployer := gross.Mul(emp.EmployerPensionPercent).Div(hundred)
		taxablePay := gross.Sub(pensionEmployee)

		incomeTax := s.calc.MonthlyTax(taxablePay.Mul(twelve), payslip.TaxCode)

		totalDeductions := pensionEmployee.Add(incomeTax).Add(payslip.NationalInsurance).Add(payslip.OtherDeductions)
		netPay := gross.Sub(totalDeductions)

		breakdown := payroll.Breakdown{
			PensionPercent:    req.NewPensionPercent,
			PensionEmployee:   round2(pensionEmployee),
			PensionEmployer:   round2(pensionEmployer),
			TaxablePay:        round2(taxablePay),
			IncomeTax:         incomeTax,
			TotalDeductions:   round2(totalDeductions),
			NetPay:            round2(netPay),
		}

		if err := s.payrollRepo.CreateAdjustment(txCtx, payroll.Adjustment{
			PayslipID:              payslipID,
			EmployeeID:             emp.ID,
			PreviousPensionPercent: payslip.PensionPercent,
			NewPensionPercent:      req.NewPensionPercent,
			PreviousNetPay:         payslip.NetPay,
			NewNetPay:              breakdown.NetPay,
			Reason:                 req.Reason,
		}); err != nil {
			return err
		}

		if err := s.payrollRepo.SetPayslipAdjusted(txCtx, payslipID, breakdown, req.Reason); err != nil {
			return err
		}

		if err := s.employeeRepo.UpdateDefaultPensionPercent(txCtx, organizationID, emp.UserID, req.NewPensionPercent); err != nil {
			return err
		}

		if err := s.recalculatePeriodTotals(txCtx, period.ID); err != nil {
			return err
		}

		response = payroll.AdjustPensionResponse{NewNetPay: breakdown.NetPay}
		return nil
	})
	if err != nil {
		return payroll.AdjustPensionResponse{}, err
	}

	return response, nil
}

func (s *PayslipServiceImpl) recalculatePeriodTotals(ctx context.Context, periodID string) error {
	payslips, err := s.payrollRepo.ListPayslipsByPeriod(ctx, periodID)
	if err != nil {
		return err
	}
	return s.payrollRepo.UpdatePeriodTotals(ctx, periodID, RecomputeTotals(payslips))
}
