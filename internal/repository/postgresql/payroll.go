package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/payroll"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// UpsertSalary implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpsertSalary(ctx context.Context, s payroll.EmployeeSalary) (payroll.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_salaries (company_id, employee_id, base_salary, bank_transfer, bonus_percent, bonus_fixed, bonus_month)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, employee_id) DO UPDATE
		SET base_salary = EXCLUDED.base_salary,
		    bank_transfer = EXCLUDED.bank_transfer,
		    bonus_percent = EXCLUDED.bonus_percent,
		    bonus_fixed = EXCLUDED.bonus_fixed,
		    bonus_month = EXCLUDED.bonus_month,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.CompanyID, s.EmployeeID, s.BaseSalary, s.BankTransfer, s.BonusPercent, s.BonusFixed, s.BonusMonth,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return payroll.EmployeeSalary{}, fmt.Errorf("failed to upsert salary: %w", err)
	}
	return s, nil
}

// GetSalary implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetSalary(ctx context.Context, employeeID string, companyID string) (payroll.EmployeeSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, base_salary, bank_transfer, bonus_percent, bonus_fixed, bonus_month, created_at, updated_at
		FROM employee_salaries
		WHERE employee_id = $1 AND company_id = $2
	`

	var s payroll.EmployeeSalary
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&s.ID, &s.CompanyID, &s.EmployeeID, &s.BaseSalary, &s.BankTransfer,
		&s.BonusPercent, &s.BonusFixed, &s.BonusMonth, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.EmployeeSalary{}, payroll.ErrSalaryNotConfigured
		}
		return payroll.EmployeeSalary{}, fmt.Errorf("failed to get salary: %w", err)
	}
	return s, nil
}

// ReplaceSummary implements payroll.PayrollRepository. Delete-then-insert
// keeps regeneration idempotent per employee and month.
func (r *payrollRepositoryImpl) ReplaceSummary(ctx context.Context, s payroll.SalarySummary) (payroll.SalarySummary, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`DELETE FROM salary_summaries WHERE company_id = $1 AND employee_id = $2 AND month = $3`,
		s.CompanyID, s.EmployeeID, s.Month,
	); err != nil {
		return payroll.SalarySummary{}, fmt.Errorf("failed to clear prior summary: %w", err)
	}

	query := `
		INSERT INTO salary_summaries (
			company_id, employee_id, month, working_days, present_days, absent_days, leave_days,
			weekly_off_days, holiday_days,
			expected_hours, worked_hours, overtime_hours, late_hours, hourly_rate,
			earned_amount, bonus_amount, final_amount, bank_transfer, payable_cash
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, generated_at
	`

	err := q.QueryRow(ctx, query,
		s.CompanyID, s.EmployeeID, s.Month, s.WorkingDays, s.PresentDays, s.AbsentDays, s.LeaveDays,
		s.WeeklyOffDays, s.HolidayDays,
		s.ExpectedHours, s.WorkedHours, s.OvertimeHours, s.LateHours, s.HourlyRate,
		s.EarnedAmount, s.BonusAmount, s.FinalAmount, s.BankTransfer, s.PayableCash,
	).Scan(&s.ID, &s.GeneratedAt)
	if err != nil {
		return payroll.SalarySummary{}, fmt.Errorf("failed to insert summary: %w", err)
	}
	return s, nil
}

// ListSummaries implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListSummaries(ctx context.Context, companyID string, month string) ([]payroll.SalarySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.company_id, s.employee_id, s.month, s.working_days, s.present_days, s.absent_days, s.leave_days,
		       s.weekly_off_days, s.holiday_days,
		       s.expected_hours, s.worked_hours, s.overtime_hours, s.late_hours, s.hourly_rate,
		       s.earned_amount, s.bonus_amount, s.final_amount, s.bank_transfer, s.payable_cash, s.generated_at,
		       e.name AS employee_name
		FROM salary_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.company_id = $1 AND s.month = $2
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.SalarySummary
	for rows.Next() {
		s, err := scanSummaryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}
	return summaries, nil
}

// GetSummary implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetSummary(ctx context.Context, employeeID string, month string, companyID string) (payroll.SalarySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.company_id, s.employee_id, s.month, s.working_days, s.present_days, s.absent_days, s.leave_days,
		       s.weekly_off_days, s.holiday_days,
		       s.expected_hours, s.worked_hours, s.overtime_hours, s.late_hours, s.hourly_rate,
		       s.earned_amount, s.bonus_amount, s.final_amount, s.bank_transfer, s.payable_cash, s.generated_at,
		       e.name AS employee_name
		FROM salary_summaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.month = $2 AND s.company_id = $3
	`

	s, err := scanSummaryRow(q.QueryRow(ctx, query, employeeID, month, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalarySummary{}, payroll.ErrSummaryNotFound
		}
		return payroll.SalarySummary{}, fmt.Errorf("failed to get summary: %w", err)
	}
	return s, nil
}

func scanSummaryRow(row pgx.Row) (payroll.SalarySummary, error) {
	var s payroll.SalarySummary
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.EmployeeID, &s.Month, &s.WorkingDays, &s.PresentDays, &s.AbsentDays, &s.LeaveDays,
		&s.WeeklyOffDays, &s.HolidayDays,
		&s.ExpectedHours, &s.WorkedHours, &s.OvertimeHours, &s.LateHours, &s.HourlyRate,
		&s.EarnedAmount, &s.BonusAmount, &s.FinalAmount, &s.BankTransfer, &s.PayableCash, &s.GeneratedAt,
		&s.EmployeeName,
	)
	return s, err
}
