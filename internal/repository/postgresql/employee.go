package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (company_id, department_id, name, phone, designation, device_user_id, active, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.CompanyID, e.DepartmentID, e.Name, e.Phone, e.Designation, e.DeviceUserID, e.Active, e.JoinedAt,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrDuplicateDeviceUser
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id, e.department_id, e.name, e.phone, e.designation,
		       e.device_user_id, e.active, e.joined_at, e.created_at, e.updated_at,
		       d.name AS department_name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1 AND e.company_id = $2
	`

	e, err := scanEmployeeRow(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByDeviceUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByDeviceUserID(ctx context.Context, deviceUserID string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id, e.department_id, e.name, e.phone, e.designation,
		       e.device_user_id, e.active, e.joined_at, e.created_at, e.updated_at,
		       d.name AS department_name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.device_user_id = $1 AND e.company_id = $2
	`

	e, err := scanEmployeeRow(q.QueryRow(ctx, query, deviceUserID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by device user id: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE e.company_id = $1`
	args := []interface{}{filter.CompanyID}

	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		where += fmt.Sprintf(` AND e.department_id = $%d`, len(args))
	}
	if filter.ActiveOnly {
		where += ` AND e.active`
	}

	countQuery := `SELECT COUNT(*) FROM employees e ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := `
		SELECT e.id, e.company_id, e.department_id, e.name, e.phone, e.designation,
		       e.device_user_id, e.active, e.joined_at, e.created_at, e.updated_at,
		       d.name AS department_name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		` + where + fmt.Sprintf(` ORDER BY e.name LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees, err := scanEmployees(rows)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// ListByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id, e.department_id, e.name, e.phone, e.designation,
		       e.device_user_id, e.active, e.joined_at, e.created_at, e.updated_at,
		       d.name AS department_name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.department_id = $1 AND e.company_id = $2 AND e.active
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, departmentID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET department_id = $1, name = $2, phone = $3, designation = $4, active = $5, updated_at = NOW()
		WHERE id = $6 AND company_id = $7
	`

	tag, err := q.Exec(ctx, query, e.DepartmentID, e.Name, e.Phone, e.Designation, e.Active, e.ID, e.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountActive(ctx context.Context, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE company_id = $1 AND active`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

func scanEmployeeRow(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.DepartmentID, &e.Name, &e.Phone, &e.Designation,
		&e.DeviceUserID, &e.Active, &e.JoinedAt, &e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName,
	)
	return e, err
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}
