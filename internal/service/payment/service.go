package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/domain/payment"
	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
	"github.com/payadjust/payadjust-backend-go/internal/repository/postgresql"
)

// bacsHeaderPrefix is the fixed VOL1 label of a Standard 18 file, padded
// to 26 characters before the processing date.
const bacsHeaderPrefix = "VOL1PAYADJUST             "

type PaymentServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	orgRepo      organization.OrganizationRepository
}

func NewPaymentService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	orgRepo organization.OrganizationRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
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

func (s *PaymentServiceImpl) requireAdmin(ctx context.Context, organizationID string) (string, error) {
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

func (s *PaymentServiceImpl) ListPaymentPeriods(ctx context.Context, organizationID string) ([]payment.PaymentPeriodResponse, error) {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return nil, err
	}

	periods, err := s.payrollRepo.ListPeriodsByStatus(ctx, organizationID, []payroll.PeriodStatus{
		payroll.PeriodStatusApproved,
		payroll.PeriodStatusProcessing,
		payroll.PeriodStatusProcessed,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentPeriodResponse, len(periods))
	for i, p := range periods {
		responses[i] = toPaymentPeriodResponse(p)
	}

	return responses, nil
}

func (s *PaymentServiceImpl) GetPaymentDetails(ctx context.Context, organizationID string, periodID string) (payment.PaymentListResponse, error) {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return payment.PaymentListResponse{}, err
	}

	return s.paymentDetails(ctx, organizationID, periodID)
}

// paymentDetails joins the period's payslips with each employee's bank
// details. Employees without bank details are included with nil bank
// fields; only the BACS export filters them out.
func (s *PaymentServiceImpl) paymentDetails(ctx context.Context, organizationID string, periodID string) (payment.PaymentListResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID, organizationID)
	if err != nil {
		return payment.PaymentListResponse{}, err
	}

	payslips, err := s.payrollRepo.ListPayslipsByPeriod(ctx, periodID)
	if err != nil {
		return payment.PaymentListResponse{}, err
	}

	employees, err := s.employeeRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return payment.PaymentListResponse{}, err
	}
	bankByEmployee := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		bankByEmployee[emp.ID] = emp
	}

	payments := make([]payment.PaymentDetailResponse, len(payslips))
	for i, slip := range payslips {
		detail := payment.PaymentDetailResponse{
			PayslipID:  slip.ID,
			EmployeeID: slip.EmployeeID,
			FullName:   "Unknown",
			NetPay:     slip.NetPay,
			Status:     string(slip.Status),
		}
		if slip.EmployeeName != nil {
			detail.FullName = *slip.EmployeeName
		}
		if slip.EmployeeEmail != nil {
			detail.Email = *slip.EmployeeEmail
		}
		if emp, ok := bankByEmployee[slip.EmployeeID]; ok {
			detail.BankAccountName = emp.BankAccountName
			detail.BankAccountNumber = emp.BankAccountNumber
			detail.BankSortCode = emp.BankSortCode
		}
		payments[i] = detail
	}

	return payment.PaymentListResponse{
		Period:   toPaymentPeriodResponse(period),
		Payments: payments,
	}, nil
}

func (s *PaymentServiceImpl) GenerateCSV(ctx context.Context, organizationID string, periodID string) (string, error) {
	details, err := s.GetPaymentDetails(ctx, organizationID, periodID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Employee Name,Email,Sort Code,Account Number,Account Name,Amount,Reference\n")

	for i, p := range details.Payments {
		if i > 0 {
			b.WriteByte('\n')
		}

		accountName := p.FullName
		if p.BankAccountName != nil && *p.BankAccountName != "" {
			accountName = *p.BankAccountName
		}

		cells := []string{
			p.FullName,
			p.Email,
			derefOrEmpty(p.BankSortCode),
			derefOrEmpty(p.BankAccountNumber),
			accountName,
			p.NetPay.StringFixed(2),
			paymentReference(p.PayslipID),
		}
		for j, cell := range cells {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}

	return b.String(), nil
}

func (s *PaymentServiceImpl) GenerateBACS(ctx context.Context, organizationID string, periodID string) (string, error) {
	details, err := s.GetPaymentDetails(ctx, organizationID, periodID)
	if err != nil {
		return "", err
	}

	var valid []payment.PaymentDetailResponse
	for _, p := range details.Payments {
		if derefOrEmpty(p.BankSortCode) != "" && derefOrEmpty(p.BankAccountNumber) != "" {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return "", payment.ErrNoBankDetails
	}

	processingDate := time.Now().UTC()
	if details.Period.ProcessingDate != nil {
		if parsed, err := time.Parse(time.RFC3339, *details.Period.ProcessingDate); err == nil {
			processingDate = parsed.UTC()
		}
	}

	lines := make([]string, 0, len(valid)+2)
	lines = append(lines, bacsHeaderPrefix+processingDate.Format("060102"))

	total := decimal.Zero
	for _, p := range valid {
		sortCode := strings.ReplaceAll(derefOrEmpty(p.BankSortCode), "-", "")
		accountNum := derefOrEmpty(p.BankAccountNumber)

		accountName := p.FullName
		if p.BankAccountName != nil && *p.BankAccountName != "" {
			accountName = *p.BankAccountName
		}
		name := strings.ToUpper(accountName)
		if len(name) > 18 {
			name = name[:18]
		}

		lines = append(lines, fmt.Sprintf("99%s%s0%011d%-18s%-18s",
			padRightZero(sortCode, 6),
			padRightZero(accountNum, 8),
			p.NetPay.Shift(2).Round(0).IntPart(),
			name,
			"SALARY",
		))

		total = total.Add(p.NetPay)
	}

	lines = append(lines, fmt.Sprintf("EOF%07d%013d", len(valid), total.Shift(2).Round(0).IntPart()))

	return strings.Join(lines, "\n"), nil
}

func (s *PaymentServiceImpl) MarkProcessing(ctx context.Context, organizationID string, periodID string) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}
		if period.Status != payroll.PeriodStatusApproved {
			return payment.ErrPeriodNotApproved
		}

		now := time.Now().UTC()
		return s.payrollRepo.UpdatePeriodStatus(txCtx, periodID, organizationID,
			payroll.PeriodStatusProcessing, payroll.PeriodDates{ProcessingDate: &now})
	})
}

func (s *PaymentServiceImpl) MarkProcessed(ctx context.Context, organizationID string, periodID string) error {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, periodID, organizationID)
		if err != nil {
			return err
		}
		if period.Status != payroll.PeriodStatusProcessing {
			return payroll.ErrInvalidTransition
		}

		if err := s.payrollRepo.UpdatePeriodStatus(txCtx, periodID, organizationID,
			payroll.PeriodStatusProcessed, payroll.PeriodDates{}); err != nil {
			return err
		}

		// Every slip in the period is paid once the run completes,
		// regardless of whether it was adjusted along the way.
		return s.payrollRepo.SetPayslipStatuses(txCtx, periodID, nil, payroll.PayslipStatusPaid)
	})
}

func (s *PaymentServiceImpl) Stats(ctx context.Context, organizationID string) (payment.PaymentStatsResponse, error) {
	if _, err := s.requireAdmin(ctx, organizationID); err != nil {
		return payment.PaymentStatsResponse{}, err
	}

	pending, err := s.payrollRepo.ListPeriodsByStatus(ctx, organizationID, []payroll.PeriodStatus{payroll.PeriodStatusApproved})
	if err != nil {
		return payment.PaymentStatsResponse{}, err
	}

	stats := payment.PaymentStatsResponse{
		PendingCount:      len(pending),
		PendingTotal:      decimal.Zero,
		ProcessedThisYear: decimal.Zero,
	}
	for _, p := range pending {
		stats.PendingTotal = stats.PendingTotal.Add(p.Totals.TotalNet)
	}

	processed, err := s.payrollRepo.ListPeriodsByStatus(ctx, organizationID, []payroll.PeriodStatus{payroll.PeriodStatusProcessed})
	if err != nil {
		return payment.PaymentStatsResponse{}, err
	}

	currentYear := time.Now().Year()
	for _, p := range processed {
		if p.Year == currentYear {
			stats.ProcessedThisYear = stats.ProcessedThisYear.Add(p.Totals.TotalNet)
		}
	}

	return stats, nil
}

// paymentReference derives the bank statement reference from the payslip ID.
func paymentReference(payslipID string) string {
	ref := payslipID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return "SALARY-" + strings.ToUpper(ref)
}

func padRightZero(s string, width int) string {
	for len(s) < width {
		s += "0"
	}
	return s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toPaymentPeriodResponse(p payroll.Period) payment.PaymentPeriodResponse {
	resp := payment.PaymentPeriodResponse{
		ID:            p.ID,
		Year:          p.Year,
		Month:         p.Month,
		Status:        string(p.Status),
		TotalNet:      p.Totals.TotalNet,
		EmployeeCount: p.Totals.EmployeeCount,
	}
	if p.ProcessingDate != nil {
		formatted := p.ProcessingDate.Format(time.RFC3339)
		resp.ProcessingDate = &formatted
	}

	return resp
}
