package leave

import "context"

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	DecideLeave(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
	ListLeaves(ctx context.Context, filter ListLeaveFilter) (ListLeaveResponse, error)
}
