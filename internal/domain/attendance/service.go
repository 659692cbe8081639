package attendance

import (
	"context"
)

// AttendanceService defines business logic for punch ingestion and
// reconciliation.
type AttendanceService interface {
	// SyncDevices pulls scan history from the company's terminals and
	// ingests it. Device failures are reported per device, not returned
	// as an error.
	SyncDevices(ctx context.Context, req SyncRequest) (SyncResponse, error)

	// SyncAll sweeps every configured terminal across companies. It is
	// run by the scheduler, not exposed over HTTP.
	SyncAll(ctx context.Context) error

	// IngestPush ingests a real-time webhook batch from a terminal.
	IngestPush(ctx context.Context, req PushBatchRequest) error

	// RecordManualPunch stores a punch entered by an admin.
	RecordManualPunch(ctx context.Context, req ManualPunchRequest) error

	// GetDay reconciles a single day for one employee.
	GetDay(ctx context.Context, req DayRequest) (DayRecordResponse, error)

	// CorrectDay replaces an employee's punches on one day with an
	// admin-supplied In/Out pair.
	CorrectDay(ctx context.Context, req CorrectDayRequest) error

	// DeleteDay removes every punch of an employee on one day.
	DeleteDay(ctx context.Context, req DayRequest) error

	// GetSummary reconciles and aggregates one employee over a date range.
	GetSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
