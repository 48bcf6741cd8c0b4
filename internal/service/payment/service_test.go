package payment

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/domain/organization"
	"github.com/payadjust/payadjust-backend-go/internal/domain/payment"
	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
)

const testOrgID = "org-1"

// ========== FAKES ==========

type fakePayrollRepo struct {
	payroll.PayrollRepository
	periods  []payroll.Period
	payslips []payroll.Payslip
}

func (f *fakePayrollRepo) ListPeriodsByStatus(ctx context.Context, organizationID string, statuses []payroll.PeriodStatus) ([]payroll.Period, error) {
	var out []payroll.Period
	for _, p := range f.periods {
		if p.OrganizationID != organizationID {
			continue
		}
		for _, s := range statuses {
			if p.Status == s {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) GetPeriodByID(ctx context.Context, id string, organizationID string) (payroll.Period, error) {
	for _, p := range f.periods {
		if p.ID == id && p.OrganizationID == organizationID {
			return p, nil
		}
	}
	return payroll.Period{}, payroll.ErrPeriodNotFound
}

func (f *fakePayrollRepo) ListPayslipsByPeriod(ctx context.Context, periodID string) ([]payroll.Payslip, error) {
	var out []payroll.Payslip
	for _, p := range f.payslips {
		if p.PeriodID == periodID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) ListByOrganization(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.OrganizationID == organizationID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeOrgRepo struct {
	organization.OrganizationRepository
	members map[string]organization.Member
}

func (f *fakeOrgRepo) GetMember(ctx context.Context, organizationID string, userID string) (organization.Member, error) {
	m, ok := f.members[userID]
	if !ok || m.OrganizationID != organizationID {
		return organization.Member{}, organization.ErrNotAMember
	}
	return m, nil
}

// ========== HELPERS ==========

func authedContext(t *testing.T, userID string) context.Context {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func ptr(s string) *string { return &s }

func newTestPaymentService(payrollRepo *fakePayrollRepo, employeeRepo *fakeEmployeeRepo) payment.PaymentService {
	orgRepo := &fakeOrgRepo{members: map[string]organization.Member{
		"admin-1":  {ID: "m-1", OrganizationID: testOrgID, UserID: "admin-1", Role: organization.RoleAdmin},
		"member-1": {ID: "m-2", OrganizationID: testOrgID, UserID: "member-1", Role: organization.RoleMember},
	}}
	return NewPaymentService(nil, payrollRepo, employeeRepo, orgRepo)
}

func paymentFixture(t *testing.T) (*fakePayrollRepo, *fakeEmployeeRepo) {
	processingDate := time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC)
	payrollRepo := &fakePayrollRepo{
		periods: []payroll.Period{
			{
				ID:             "per-1",
				OrganizationID: testOrgID,
				Year:           2025,
				Month:          3,
				Status:         payroll.PeriodStatusApproved,
				ProcessingDate: &processingDate,
				Totals: payroll.PeriodTotals{
					TotalNet:      d(t, "5010.44"),
					EmployeeCount: 2,
				},
			},
		},
		payslips: []payroll.Payslip{
			{
				ID:            "abcdef12-0000-0000-0000-000000000000",
				PeriodID:      "per-1",
				EmployeeID:    "emp-1",
				NetPay:        d(t, "3126.64"),
				Status:        payroll.PayslipStatusApproved,
				EmployeeName:  ptr("Alice Smith"),
				EmployeeEmail: ptr("alice@example.com"),
			},
			{
				ID:            "99887766-0000-0000-0000-000000000000",
				PeriodID:      "per-1",
				EmployeeID:    "emp-2",
				NetPay:        d(t, "1883.80"),
				Status:        payroll.PayslipStatusApproved,
				EmployeeName:  ptr("Bob Jones"),
				EmployeeEmail: ptr("bob@example.com"),
			},
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		employees: []employee.Employee{
			{
				ID:                "emp-1",
				OrganizationID:    testOrgID,
				UserID:            "user-1",
				BankAccountName:   ptr("A SMITH"),
				BankAccountNumber: ptr("12345678"),
				BankSortCode:      ptr("12-34-56"),
			},
			{
				ID:             "emp-2",
				OrganizationID: testOrgID,
				UserID:         "user-2",
			},
		},
	}
	return payrollRepo, employeeRepo
}

// ========== TESTS ==========

func TestGetPaymentDetailsJoinsBankData(t *testing.T) {
	svc := newTestPaymentService(paymentFixture(t))
	ctx := authedContext(t, "admin-1")

	details, err := svc.GetPaymentDetails(ctx, testOrgID, "per-1")
	require.NoError(t, err)

	assert.Equal(t, "per-1", details.Period.ID)
	assert.Equal(t, 2, details.Period.EmployeeCount)
	require.Len(t, details.Payments, 2)

	alice := details.Payments[0]
	assert.Equal(t, "Alice Smith", alice.FullName)
	require.NotNil(t, alice.BankSortCode)
	assert.Equal(t, "12-34-56", *alice.BankSortCode)

	bob := details.Payments[1]
	assert.Equal(t, "Bob Jones", bob.FullName)
	assert.Nil(t, bob.BankAccountNumber)
}

func TestGetPaymentDetailsRequiresAdmin(t *testing.T) {
	svc := newTestPaymentService(paymentFixture(t))

	_, err := svc.GetPaymentDetails(authedContext(t, "member-1"), testOrgID, "per-1")
	assert.ErrorIs(t, err, organization.ErrAdminRequired)

	_, err = svc.GetPaymentDetails(authedContext(t, "stranger"), testOrgID, "per-1")
	assert.ErrorIs(t, err, organization.ErrNotAMember)
}

func TestGenerateCSV(t *testing.T) {
	svc := newTestPaymentService(paymentFixture(t))
	ctx := authedContext(t, "admin-1")

	csv, err := svc.GenerateCSV(ctx, testOrgID, "per-1")
	require.NoError(t, err)

	expected := "Employee Name,Email,Sort Code,Account Number,Account Name,Amount,Reference\n" +
		`"Alice Smith","alice@example.com","12-34-56","12345678","A SMITH","3126.64","SALARY-ABCDEF12"` + "\n" +
		`"Bob Jones","bob@example.com","","","Bob Jones","1883.80","SALARY-99887766"`
	assert.Equal(t, expected, csv)
}

func TestGenerateBACS(t *testing.T) {
	svc := newTestPaymentService(paymentFixture(t))
	ctx := authedContext(t, "admin-1")

	bacs, err := svc.GenerateBACS(ctx, testOrgID, "per-1")
	require.NoError(t, err)

	// Bob has no bank details and is excluded from the run.
	expected := "VOL1PAYADJUST             250328\n" +
		"9912345612345678000000312664A SMITH           SALARY            \n" +
		"EOF00000010000000312664"
	assert.Equal(t, expected, bacs)
}

func TestGenerateBACSNoBankDetails(t *testing.T) {
	payrollRepo, employeeRepo := paymentFixture(t)
	for i := range employeeRepo.employees {
		employeeRepo.employees[i].BankAccountNumber = nil
		employeeRepo.employees[i].BankSortCode = nil
	}
	svc := newTestPaymentService(payrollRepo, employeeRepo)

	_, err := svc.GenerateBACS(authedContext(t, "admin-1"), testOrgID, "per-1")
	assert.ErrorIs(t, err, payment.ErrNoBankDetails)
}

func TestListPaymentPeriodsFiltersByStatus(t *testing.T) {
	payrollRepo, employeeRepo := paymentFixture(t)
	payrollRepo.periods = append(payrollRepo.periods, payroll.Period{
		ID:             "per-2",
		OrganizationID: testOrgID,
		Year:           2025,
		Month:          4,
		Status:         payroll.PeriodStatusDraft,
	})
	svc := newTestPaymentService(payrollRepo, employeeRepo)

	periods, err := svc.ListPaymentPeriods(authedContext(t, "admin-1"), testOrgID)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, "per-1", periods[0].ID)
	assert.Equal(t, "approved", periods[0].Status)
}

func TestStats(t *testing.T) {
	currentYear := time.Now().Year()
	payrollRepo := &fakePayrollRepo{
		periods: []payroll.Period{
			{ID: "p1", OrganizationID: testOrgID, Year: currentYear, Month: 1, Status: payroll.PeriodStatusApproved,
				Totals: payroll.PeriodTotals{TotalNet: d(t, "100.50")}},
			{ID: "p2", OrganizationID: testOrgID, Year: currentYear, Month: 2, Status: payroll.PeriodStatusApproved,
				Totals: payroll.PeriodTotals{TotalNet: d(t, "200.25")}},
			{ID: "p3", OrganizationID: testOrgID, Year: currentYear, Month: 3, Status: payroll.PeriodStatusProcessed,
				Totals: payroll.PeriodTotals{TotalNet: d(t, "50.00")}},
			{ID: "p4", OrganizationID: testOrgID, Year: 2020, Month: 12, Status: payroll.PeriodStatusProcessed,
				Totals: payroll.PeriodTotals{TotalNet: d(t, "999.99")}},
		},
	}
	svc := newTestPaymentService(payrollRepo, &fakeEmployeeRepo{})

	stats, err := svc.Stats(authedContext(t, "admin-1"), testOrgID)
	require.NoError(t, err)
	assert.Equal(t, "300.75", stats.PendingTotal.StringFixed(2))
	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, "50.00", stats.ProcessedThisYear.StringFixed(2))
}
