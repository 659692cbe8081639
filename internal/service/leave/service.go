package leave

import (
	"context"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
)

type leaveService struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &leaveService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateLeave implements leave.LeaveService.
func (s *leaveService) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	overlaps, err := s.leaveRepo.HasApprovedOverlap(ctx, req.EmployeeID, start, end, req.CompanyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		CompanyID:  req.CompanyID,
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToLeaveResponse(created), nil
}

// DecideLeave implements leave.LeaveService.
func (s *leaveService) DecideLeave(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	l, err := s.leaveRepo.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if l.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyDecided
	}

	now := time.Now()
	l.DecidedBy = &req.DecidedBy
	l.DecidedAt = &now
	if req.Approve {
		l.Status = leave.StatusApproved
	} else {
		l.Status = leave.StatusRejected
	}

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToLeaveResponse(l), nil
}

// ListLeaves implements leave.LeaveService.
func (s *leaveService) ListLeaves(ctx context.Context, filter leave.ListLeaveFilter) (leave.ListLeaveResponse, error) {
	leaves, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToLeaveResponse(l))
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	return leave.ListLeaveResponse{
		Leaves:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
