package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyDecided   = errors.New("leave request has already been approved or rejected")
	ErrOverlappingLeave      = errors.New("an approved leave already covers part of this range")
	ErrEndBeforeStart        = errors.New("end date must not be before start date")
	ErrUnauthorizedLeaveEdit = errors.New("unauthorized to modify this leave request")
)
