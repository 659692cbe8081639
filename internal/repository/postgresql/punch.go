package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// UpsertFirstIn implements attendance.PunchRepository. Only the earliest
// In punch of the local day survives; a later candidate is dropped and
// an earlier one replaces the stored row.
func (r *punchRepositoryImpl) UpsertFirstIn(ctx context.Context, punch attendance.PunchEvent, dayStart, dayEnd time.Time) (bool, error) {
	return r.upsertDirectional(ctx, punch, dayStart, dayEnd, attendance.DirectionIn, "<")
}

// UpsertLastOut implements attendance.PunchRepository. Mirror of
// UpsertFirstIn: only the latest Out punch of the local day survives.
func (r *punchRepositoryImpl) UpsertLastOut(ctx context.Context, punch attendance.PunchEvent, dayStart, dayEnd time.Time) (bool, error) {
	return r.upsertDirectional(ctx, punch, dayStart, dayEnd, attendance.DirectionOut, ">")
}

func (r *punchRepositoryImpl) upsertDirectional(ctx context.Context, punch attendance.PunchEvent, dayStart, dayEnd time.Time, direction attendance.PunchDirection, wins string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, timestamp
		FROM punch_events
		WHERE employee_id = $1
		  AND company_id = $2
		  AND direction = $3
		  AND timestamp >= $4
		  AND timestamp < $5
		LIMIT 1
	`

	var existingID string
	var existingTS time.Time
	err := q.QueryRow(ctx, query, punch.EmployeeID, punch.CompanyID, string(direction), dayStart, dayEnd).
		Scan(&existingID, &existingTS)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("failed to look up existing punch: %w", err)
		}

		insert := `
			INSERT INTO punch_events (employee_id, company_id, timestamp, direction, source)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (employee_id, timestamp, direction) DO NOTHING
		`
		tag, err := q.Exec(ctx, insert, punch.EmployeeID, punch.CompanyID, punch.Timestamp, string(direction), punch.Source)
		if err != nil {
			return false, fmt.Errorf("failed to insert punch: %w", err)
		}
		return tag.RowsAffected() > 0, nil
	}

	replaces := punch.Timestamp.Before(existingTS)
	if wins == ">" {
		replaces = punch.Timestamp.After(existingTS)
	}
	if !replaces {
		return false, nil
	}

	update := `
		UPDATE punch_events
		SET timestamp = $1, source = $2, updated_at = NOW()
		WHERE id = $3
	`
	if _, err := q.Exec(ctx, update, punch.Timestamp, punch.Source, existingID); err != nil {
		return false, fmt.Errorf("failed to update punch: %w", err)
	}
	return true, nil
}

// ListByEmployeeRange implements attendance.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, timestamp, direction, source, created_at, updated_at
		FROM punch_events
		WHERE employee_id = $1
		  AND company_id = $2
		  AND timestamp >= $3
		  AND timestamp < $4
		ORDER BY timestamp
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// Insert implements attendance.PunchRepository. The unique index on
// (employee_id, timestamp, direction) makes re-delivered events no-ops.
func (r *punchRepositoryImpl) Insert(ctx context.Context, punch attendance.PunchEvent) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (employee_id, company_id, timestamp, direction, source)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, timestamp, direction) DO NOTHING
	`
	tag, err := q.Exec(ctx, query, punch.EmployeeID, punch.CompanyID, punch.Timestamp, string(punch.Direction), punch.Source)
	if err != nil {
		return false, fmt.Errorf("failed to insert punch: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByEmployeeDay implements attendance.PunchRepository.
func (r *punchRepositoryImpl) DeleteByEmployeeDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM punch_events
		WHERE employee_id = $1
		  AND company_id = $2
		  AND timestamp >= $3
		  AND timestamp < $4
	`
	tag, err := q.Exec(ctx, query, employeeID, companyID, dayStart, dayEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to delete punches: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPunches(rows pgx.Rows) ([]attendance.PunchEvent, error) {
	var punches []attendance.PunchEvent
	for rows.Next() {
		var p attendance.PunchEvent
		var direction string
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.CompanyID, &p.Timestamp, &direction, &p.Source, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		p.Direction = attendance.PunchDirection(direction)
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}
	return punches, nil
}
