package attendance

import (
	"context"
	"time"
)

// PunchRepository stores raw punch events. All methods take companyID to
// keep tenants isolated at the data layer.
type PunchRepository interface {
	// UpsertFirstIn stores an In punch unless an earlier In already
	// exists for the employee on the same local day.
	UpsertFirstIn(ctx context.Context, punch PunchEvent, dayStart, dayEnd time.Time) (bool, error)

	// UpsertLastOut stores an Out punch unless a later Out already
	// exists for the employee on the same local day.
	UpsertLastOut(ctx context.Context, punch PunchEvent, dayStart, dayEnd time.Time) (bool, error)

	// Insert stores a punch as its own row. A punch with the same
	// employee, timestamp and direction is silently skipped; the return
	// reports whether a row was written.
	Insert(ctx context.Context, punch PunchEvent) (bool, error)

	// ListByEmployeeRange returns an employee's punches within [from, to)
	// ordered by timestamp.
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]PunchEvent, error)

	// DeleteByEmployeeDay removes every punch of an employee within
	// [dayStart, dayEnd) and returns the number of rows removed.
	DeleteByEmployeeDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time, companyID string) (int64, error)
}
