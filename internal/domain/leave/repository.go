package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, leave LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)
	List(ctx context.Context, filter ListLeaveFilter) ([]LeaveRequest, int64, error)
	Update(ctx context.Context, leave LeaveRequest) error

	// ListApprovedInRange returns approved leaves of one employee that
	// overlap the inclusive [from, to] date range.
	ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]LeaveRequest, error)

	// HasApprovedOverlap reports whether any approved leave of the
	// employee overlaps the inclusive [from, to] date range.
	HasApprovedOverlap(ctx context.Context, employeeID string, from, to time.Time, companyID string) (bool, error)
}
