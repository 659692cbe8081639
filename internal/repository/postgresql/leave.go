package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (company_id, employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.CompanyID, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.Reason, string(l.Status),
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.company_id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.reason, l.status, l.decided_by, l.decided_at, l.created_at, l.updated_at,
		       e.name AS employee_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1 AND l.company_id = $2
	`

	l, err := scanLeaveRow(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE l.company_id = $1`
	args := []interface{}{filter.CompanyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where += fmt.Sprintf(` AND l.employee_id = $%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where += fmt.Sprintf(` AND l.status = $%d`, len(args))
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests l `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		SELECT l.id, l.company_id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.reason, l.status, l.decided_by, l.decided_at, l.created_at, l.updated_at,
		       e.name AS employee_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		` + where + fmt.Sprintf(` ORDER BY l.start_date DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeaveRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return leaves, total, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, l leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, decided_by = $2, decided_at = $3, updated_at = NOW()
		WHERE id = $4 AND company_id = $5
	`

	tag, err := q.Exec(ctx, query, string(l.Status), l.DecidedBy, l.DecidedAt, l.ID, l.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// ListApprovedInRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.company_id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.reason, l.status, l.decided_by, l.decided_at, l.created_at, l.updated_at,
		       e.name AS employee_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1
		  AND l.company_id = $2
		  AND l.status = 'approved'
		  AND l.start_date <= $3
		  AND l.end_date >= $4
		ORDER BY l.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeaveRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approved leaves: %w", err)
	}
	return leaves, nil
}

// HasApprovedOverlap implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasApprovedOverlap(ctx context.Context, employeeID string, from, to time.Time, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND company_id = $2
			  AND status = 'approved'
			  AND start_date <= $3
			  AND end_date >= $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, companyID, to, from).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	return exists, nil
}

func scanLeaveRow(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	var status string
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate,
		&l.Reason, &status, &l.DecidedBy, &l.DecidedAt, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName,
	)
	l.Status = leave.Status(status)
	return l, err
}
