package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/payadjust/payadjust-backend-go/internal/domain/payroll"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== PERIODS ==========

const periodColumns = `
	id, organization_id, year, month, status,
	preview_start_date, adjustment_deadline, processing_date,
	total_gross, total_net, total_tax, total_ni,
	total_pension_employee, total_pension_employer, employee_count,
	created_by, created_at, updated_at
`

func scanPeriod(row pgx.Row) (payroll.Period, error) {
	var p payroll.Period
	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.Year, &p.Month, &p.Status,
		&p.PreviewStartDate, &p.AdjustmentDeadline, &p.ProcessingDate,
		&p.Totals.TotalGross, &p.Totals.TotalNet, &p.Totals.TotalTax, &p.Totals.TotalNI,
		&p.Totals.TotalPensionEmployee, &p.Totals.TotalPensionEmployer, &p.Totals.EmployeeCount,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payrollRepository) CreatePeriod(ctx context.Context, period payroll.Period) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (id, organization_id, year, month, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + periodColumns

	p, err := scanPeriod(q.QueryRow(ctx, query,
		uuid.New().String(), period.OrganizationID, period.Year, period.Month,
		payroll.PeriodStatusDraft, period.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uq_payroll_period_org_year_month") {
			return payroll.Period{}, payroll.ErrPeriodAlreadyExists
		}
		return payroll.Period{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPeriodByID(ctx context.Context, id string, organizationID string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1 AND organization_id = $2`

	p, err := scanPeriod(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

// GetPeriodForUpdate locks the period row for the rest of the transaction
// so concurrent mutations of the same period serialize.
func (r *payrollRepository) GetPeriodForUpdate(ctx context.Context, id string, organizationID string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1 AND organization_id = $2 FOR UPDATE`

	p, err := scanPeriod(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to lock payroll period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListPeriods(ctx context.Context, organizationID string) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE organization_id = $1
		ORDER BY year DESC, month DESC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (r *payrollRepository) ListPeriodsByStatus(ctx context.Context, organizationID string, statuses []payroll.PeriodStatus) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods
		WHERE organization_id = $1 AND status = ANY($2)
		ORDER BY year DESC, month DESC
	`

	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	rows, err := q.Query(ctx, query, organizationID, values)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods by status: %w", err)
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (r *payrollRepository) UpdatePeriodStatus(ctx context.Context, id string, organizationID string, status payroll.PeriodStatus, dates payroll.PeriodDates) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET status = $1,
			preview_start_date = COALESCE($2, preview_start_date),
			adjustment_deadline = COALESCE($3, adjustment_deadline),
			processing_date = COALESCE($4, processing_date),
			updated_at = NOW()
		WHERE id = $5 AND organization_id = $6
	`

	tag, err := q.Exec(ctx, query, status, dates.PreviewStartDate, dates.AdjustmentDeadline, dates.ProcessingDate, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to update period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}

	return nil
}

func (r *payrollRepository) ClearPreviewDates(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET preview_start_date = NULL, adjustment_deadline = NULL, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
	`

	tag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to clear preview dates: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}

	return nil
}

func (r *payrollRepository) UpdatePeriodTotals(ctx context.Context, id string, totals payroll.PeriodTotals) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET total_gross = $1, total_net = $2, total_tax = $3, total_ni = $4,
			total_pension_employee = $5, total_pension_employer = $6,
			employee_count = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := q.Exec(ctx, query,
		totals.TotalGross, totals.TotalNet, totals.TotalTax, totals.TotalNI,
		totals.TotalPensionEmployee, totals.TotalPensionEmployer, totals.EmployeeCount, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update period totals: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeletePeriod(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_periods WHERE id = $1 AND organization_id = $2`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}

	return nil
}

// ========== PAYSLIPS ==========

const payslipColumns = `
	p.id, p.payroll_period_id, p.employee_id,
	p.base_salary, p.bonus, p.other_additions, p.gross_pay,
	p.pension_percent, p.pension_employee, p.pension_employer,
	p.taxable_pay, p.income_tax, p.national_insurance,
	p.other_deductions, p.total_deductions, p.net_pay,
	p.status, p.employee_adjusted, p.adjustment_note, p.tax_code,
	p.created_at, p.updated_at
`

func scanPayslip(row pgx.Row, withJoins bool) (payroll.Payslip, error) {
	var s payroll.Payslip
	dest := []any{
		&s.ID, &s.PeriodID, &s.EmployeeID,
		&s.BaseSalary, &s.Bonus, &s.OtherAdditions, &s.GrossPay,
		&s.PensionPercent, &s.PensionEmployee, &s.PensionEmployer,
		&s.TaxablePay, &s.IncomeTax, &s.NationalInsurance,
		&s.OtherDeductions, &s.TotalDeductions, &s.NetPay,
		&s.Status, &s.EmployeeAdjusted, &s.AdjustmentNote, &s.TaxCode,
		&s.CreatedAt, &s.UpdatedAt,
	}
	if withJoins {
		dest = append(dest,
			&s.EmployeeName, &s.EmployeeEmail, &s.Department,
			&s.PeriodYear, &s.PeriodMonth, &s.PeriodStatus,
		)
	}
	err := row.Scan(dest...)
	return s, err
}

const payslipJoinColumns = payslipColumns + `,
	u.full_name, u.email, e.department,
	pp.year, pp.month, pp.status
`

const payslipJoins = `
	JOIN employee_details e ON e.id = p.employee_id
	JOIN users u ON u.id = e.user_id
	JOIN payroll_periods pp ON pp.id = p.payroll_period_id
`

// ReplacePayslips deletes every payslip in the period and inserts the
// new set. Child bonus rows go with the old payslips via cascade.
func (r *payrollRepository) ReplacePayslips(ctx context.Context, periodID string, payslips []payroll.Payslip) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payslips WHERE payroll_period_id = $1`, periodID); err != nil {
		return fmt.Errorf("failed to clear payslips: %w", err)
	}

	for _, s := range payslips {
		if _, err := r.InsertPayslip(ctx, s); err != nil {
			return err
		}
	}

	return nil
}

func (r *payrollRepository) InsertPayslip(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, payroll_period_id, employee_id,
			base_salary, bonus, other_additions, gross_pay,
			pension_percent, pension_employee, pension_employer,
			taxable_pay, income_tax, national_insurance,
			other_deductions, total_deductions, net_pay,
			status, employee_adjusted, adjustment_note, tax_code
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`

	id := payslip.ID
	if id == "" {
		id = uuid.New().String()
	}

	err := q.QueryRow(ctx, query,
		id, payslip.PeriodID, payslip.EmployeeID,
		payslip.BaseSalary, payslip.Bonus, payslip.OtherAdditions, payslip.GrossPay,
		payslip.PensionPercent, payslip.PensionEmployee, payslip.PensionEmployer,
		payslip.TaxablePay, payslip.IncomeTax, payslip.NationalInsurance,
		payslip.OtherDeductions, payslip.TotalDeductions, payslip.NetPay,
		payslip.Status, payslip.EmployeeAdjusted, payslip.AdjustmentNote, payslip.TaxCode,
	).Scan(&payslip.ID)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to insert payslip: %w", err)
	}

	return payslip, nil
}

func (r *payrollRepository) GetPayslipByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipJoinColumns + ` FROM payslips p ` + payslipJoins + ` WHERE p.id = $1`

	s, err := scanPayslip(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	s.Bonuses, err = r.ListBonusesByPayslip(ctx, s.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return s, nil
}

func (r *payrollRepository) GetPayslipForEmployee(ctx context.Context, id string, employeeID string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipJoinColumns + ` FROM payslips p ` + payslipJoins + ` WHERE p.id = $1 AND p.employee_id = $2`

	s, err := scanPayslip(q.QueryRow(ctx, query, id, employeeID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	s.Bonuses, err = r.ListBonusesByPayslip(ctx, s.ID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return s, nil
}

func (r *payrollRepository) ListPayslipsByPeriod(ctx context.Context, periodID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipJoinColumns + `
		FROM payslips p ` + payslipJoins + `
		WHERE p.payroll_period_id = $1
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		s, err := scanPayslip(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.attachBonuses(ctx, payslips)
}

func (r *payrollRepository) ListPayslipsByEmployee(ctx context.Context, organizationID string, employeeID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipJoinColumns + `
		FROM payslips p ` + payslipJoins + `
		WHERE p.employee_id = $1 AND pp.organization_id = $2
		ORDER BY pp.year DESC, pp.month DESC
	`

	rows, err := q.Query(ctx, query, employeeID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		s, err := scanPayslip(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.attachBonuses(ctx, payslips)
}

// attachBonuses loads the bonus rows for a payslip set in one query and
// groups them onto their parents.
func (r *payrollRepository) attachBonuses(ctx context.Context, payslips []payroll.Payslip) ([]payroll.Payslip, error) {
	if len(payslips) == 0 {
		return payslips, nil
	}

	q := GetQuerier(ctx, r.db)

	ids := make([]string, len(payslips))
	for i, s := range payslips {
		ids[i] = s.ID
	}

	query := `
		SELECT id, payslip_id, description, amount, created_by, created_at
		FROM payslip_bonuses
		WHERE payslip_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip bonuses: %w", err)
	}
	defer rows.Close()

	byPayslip := make(map[string][]payroll.Bonus)
	for rows.Next() {
		var b payroll.Bonus
		if err := rows.Scan(&b.ID, &b.PayslipID, &b.Description, &b.Amount, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payslip bonus: %w", err)
		}
		byPayslip[b.PayslipID] = append(byPayslip[b.PayslipID], b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range payslips {
		payslips[i].Bonuses = byPayslip[payslips[i].ID]
	}

	return payslips, nil
}

func (r *payrollRepository) UpdatePayslipBreakdown(ctx context.Context, id string, b payroll.Breakdown) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET base_salary = $1, bonus = $2, other_additions = $3, gross_pay = $4,
			pension_percent = $5, pension_employee = $6, pension_employer = $7,
			taxable_pay = $8, income_tax = $9, national_insurance = $10,
			other_deductions = $11, total_deductions = $12, net_pay = $13,
			updated_at = NOW()
		WHERE id = $14
	`

	tag, err := q.Exec(ctx, query,
		b.BaseSalary, b.Bonus, b.OtherAdditions, b.GrossPay,
		b.PensionPercent, b.PensionEmployee, b.PensionEmployer,
		b.TaxablePay, b.IncomeTax, b.NationalInsurance,
		b.OtherDeductions, b.TotalDeductions, b.NetPay, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update payslip breakdown: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}

func (r *payrollRepository) SetPayslipAdjusted(ctx context.Context, id string, b payroll.Breakdown, note *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET pension_percent = $1, pension_employee = $2, pension_employer = $3,
			taxable_pay = $4, income_tax = $5,
			total_deductions = $6, net_pay = $7,
			status = $8, employee_adjusted = TRUE, adjustment_note = $9,
			updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		b.PensionPercent, b.PensionEmployee, b.PensionEmployer,
		b.TaxablePay, b.IncomeTax,
		b.TotalDeductions, b.NetPay,
		payroll.PayslipStatusAdjusted, note, id,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}

// SetPayslipStatuses moves the period's payslips matching one of the
// `from` statuses to `to`. An empty `from` moves every payslip.
func (r *payrollRepository) SetPayslipStatuses(ctx context.Context, periodID string, from []payroll.PayslipStatus, to payroll.PayslipStatus) error {
	q := GetQuerier(ctx, r.db)

	if len(from) == 0 {
		query := `
			UPDATE payslips
			SET status = $1, updated_at = NOW()
			WHERE payroll_period_id = $2
		`
		if _, err := q.Exec(ctx, query, to, periodID); err != nil {
			return fmt.Errorf("failed to update payslip statuses: %w", err)
		}
		return nil
	}

	values := make([]string, len(from))
	for i, s := range from {
		values[i] = string(s)
	}

	query := `
		UPDATE payslips
		SET status = $1, updated_at = NOW()
		WHERE payroll_period_id = $2 AND status = ANY($3)
	`

	if _, err := q.Exec(ctx, query, to, periodID, values); err != nil {
		return fmt.Errorf("failed to update payslip statuses: %w", err)
	}

	return nil
}

// ResetPayslipsToDraft reverts every payslip in the period to draft and
// wipes the employee adjustment marks. Used when a preview period is
// pulled back to draft.
func (r *payrollRepository) ResetPayslipsToDraft(ctx context.Context, periodID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET status = $1, employee_adjusted = FALSE, adjustment_note = NULL, updated_at = NOW()
		WHERE payroll_period_id = $2
	`

	if _, err := q.Exec(ctx, query, payroll.PayslipStatusDraft, periodID); err != nil {
		return fmt.Errorf("failed to reset payslips to draft: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeletePayslip(ctx context.Context, id string, periodID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1 AND payroll_period_id = $2`, id, periodID)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}

func (r *payrollRepository) DeletePayslipByEmployee(ctx context.Context, periodID string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE payroll_period_id = $1 AND employee_id = $2`, periodID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}

// ========== BONUSES ==========

func (r *payrollRepository) CreateBonus(ctx context.Context, bonus payroll.Bonus) (payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslip_bonuses (id, payslip_id, description, amount, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, payslip_id, description, amount, created_by, created_at
	`

	var b payroll.Bonus
	err := q.QueryRow(ctx, query,
		uuid.New().String(), bonus.PayslipID, bonus.Description, bonus.Amount, bonus.CreatedBy,
	).Scan(&b.ID, &b.PayslipID, &b.Description, &b.Amount, &b.CreatedBy, &b.CreatedAt)
	if err != nil {
		return payroll.Bonus{}, fmt.Errorf("failed to create payslip bonus: %w", err)
	}

	return b, nil
}

func (r *payrollRepository) CreateBonuses(ctx context.Context, bonuses []payroll.Bonus) error {
	for _, b := range bonuses {
		if _, err := r.CreateBonus(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

// GetBonusByID scopes through the payslip and period so a bonus is only
// reachable inside its own organization.
func (r *payrollRepository) GetBonusByID(ctx context.Context, id string, organizationID string) (payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.payslip_id, b.description, b.amount, b.created_by, b.created_at
		FROM payslip_bonuses b
		JOIN payslips p ON p.id = b.payslip_id
		JOIN payroll_periods pp ON pp.id = p.payroll_period_id
		WHERE b.id = $1 AND pp.organization_id = $2
	`

	var b payroll.Bonus
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&b.ID, &b.PayslipID, &b.Description, &b.Amount, &b.CreatedBy, &b.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Bonus{}, payroll.ErrBonusNotFound
		}
		return payroll.Bonus{}, fmt.Errorf("failed to get payslip bonus: %w", err)
	}

	return b, nil
}

func (r *payrollRepository) ListBonusesByPayslip(ctx context.Context, payslipID string) ([]payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payslip_id, description, amount, created_by, created_at
		FROM payslip_bonuses
		WHERE payslip_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []payroll.Bonus
	for rows.Next() {
		var b payroll.Bonus
		if err := rows.Scan(&b.ID, &b.PayslipID, &b.Description, &b.Amount, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payslip bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}

	return bonuses, rows.Err()
}

func (r *payrollRepository) UpdateBonus(ctx context.Context, id string, description string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payslip_bonuses SET description = $1, amount = $2 WHERE id = $3`, description, amount, id)
	if err != nil {
		return fmt.Errorf("failed to update payslip bonus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrBonusNotFound
	}

	return nil
}

func (r *payrollRepository) DeleteBonus(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslip_bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payslip bonus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrBonusNotFound
	}

	return nil
}

// ========== ADJUSTMENTS ==========

func (r *payrollRepository) CreateAdjustment(ctx context.Context, adjustment payroll.Adjustment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslip_adjustments (
			id, payslip_id, employee_id,
			previous_pension_percent, new_pension_percent,
			previous_net_pay, new_net_pay, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		uuid.New().String(), adjustment.PayslipID, adjustment.EmployeeID,
		adjustment.PreviousPensionPercent, adjustment.NewPensionPercent,
		adjustment.PreviousNetPay, adjustment.NewNetPay, adjustment.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to create payslip adjustment: %w", err)
	}

	return nil
}
