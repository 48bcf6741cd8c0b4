package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/payadjust/payadjust-backend-go/internal/domain/employee"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.organization_id, e.user_id,
	e.annual_salary, e.tax_code, e.default_pension_percent, e.employer_pension_percent,
	e.department, e.start_date,
	e.bank_account_name, e.bank_account_number, e.bank_sort_code,
	e.is_active, e.created_at, e.updated_at,
	u.full_name, u.email
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.OrganizationID, &e.UserID,
		&e.AnnualSalary, &e.TaxCode, &e.DefaultPensionPercent, &e.EmployerPensionPercent,
		&e.Department, &e.StartDate,
		&e.BankAccountName, &e.BankAccountNumber, &e.BankSortCode,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		&e.FullName, &e.Email,
	)
	return e, err
}

// Upsert keys on (organization_id, user_id): one payroll record per
// member per organization.
func (r *employeeRepository) Upsert(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO employee_details (
				id, organization_id, user_id,
				annual_salary, tax_code, default_pension_percent, employer_pension_percent,
				department, start_date,
				bank_account_name, bank_account_number, bank_sort_code,
				is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE)
			ON CONFLICT (organization_id, user_id) DO UPDATE SET
				annual_salary = EXCLUDED.annual_salary,
				tax_code = EXCLUDED.tax_code,
				default_pension_percent = EXCLUDED.default_pension_percent,
				employer_pension_percent = EXCLUDED.employer_pension_percent,
				department = EXCLUDED.department,
				start_date = EXCLUDED.start_date,
				bank_account_name = EXCLUDED.bank_account_name,
				bank_account_number = EXCLUDED.bank_account_number,
				bank_sort_code = EXCLUDED.bank_sort_code,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + employeeColumns + `
		FROM upserted e
		JOIN users u ON u.id = e.user_id
	`

	e, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.New().String(), emp.OrganizationID, emp.UserID,
		emp.AnnualSalary, emp.TaxCode, emp.DefaultPensionPercent, emp.EmployerPensionPercent,
		emp.Department, emp.StartDate,
		emp.BankAccountName, emp.BankAccountNumber, emp.BankSortCode,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to upsert employee details: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employee_details e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1 AND e.organization_id = $2
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee details: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, organizationID string, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employee_details e
		JOIN users u ON u.id = e.user_id
		WHERE e.organization_id = $1 AND e.user_id = $2
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, organizationID, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee details: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) ListByOrganization(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	return r.list(ctx, organizationID, false)
}

func (r *employeeRepository) ListActiveByOrganization(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	return r.list(ctx, organizationID, true)
}

func (r *employeeRepository) list(ctx context.Context, organizationID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employee_details e
		JOIN users u ON u.id = e.user_id
		WHERE e.organization_id = $1
	`
	if activeOnly {
		query += ` AND e.is_active`
	}
	query += ` ORDER BY u.full_name`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee details: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee details: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) SetActive(ctx context.Context, organizationID string, userID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_details
		SET is_active = $1, updated_at = NOW()
		WHERE organization_id = $2 AND user_id = $3
	`

	tag, err := q.Exec(ctx, query, active, organizationID, userID)
	if err != nil {
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) UpdateDefaultPensionPercent(ctx context.Context, organizationID string, userID string, percent decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_details
		SET default_pension_percent = $1, updated_at = NOW()
		WHERE organization_id = $2 AND user_id = $3
	`

	tag, err := q.Exec(ctx, query, percent, organizationID, userID)
	if err != nil {
		return fmt.Errorf("failed to update default pension percent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
