package attendance

import (
	"context"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/holiday"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
	"github.com/easycodingbd/hazira-backend-go/internal/service/schedule"
)

// Reconciler loads the stored inputs of one employee over a local date
// range and runs classification. The attendance API uses it for
// summaries and payroll uses it for whole months.
type Reconciler struct {
	PunchRepo   attendance.PunchRepository
	LeaveRepo   leave.LeaveRepository
	HolidayRepo holiday.HolidayRepository
	Location    *time.Location
}

func NewReconciler(punchRepo attendance.PunchRepository, leaveRepo leave.LeaveRepository, holidayRepo holiday.HolidayRepository, location *time.Location) *Reconciler {
	return &Reconciler{
		PunchRepo:   punchRepo,
		LeaveRepo:   leaveRepo,
		HolidayRepo: holidayRepo,
		Location:    location,
	}
}

// ReconcileRange classifies every day in [from, to], both local
// midnights inclusive.
func (r *Reconciler) ReconcileRange(ctx context.Context, emp employee.Employee, dept department.Department, from, to time.Time) (attendance.Summary, error) {
	punches, err := r.PunchRepo.ListByEmployeeRange(ctx, emp.ID, from, to.AddDate(0, 0, 1), emp.CompanyID)
	if err != nil {
		return attendance.Summary{}, err
	}

	leaves, err := r.LeaveRepo.ListApprovedInRange(ctx, emp.ID, from, to, emp.CompanyID)
	if err != nil {
		return attendance.Summary{}, err
	}

	holidays, err := r.HolidayRepo.ListInRange(ctx, emp.CompanyID, from, to)
	if err != nil {
		return attendance.Summary{}, err
	}

	days := Reconcile(ReconcileInput{
		EmployeeID: emp.ID,
		From:       from,
		To:         to,
		Location:   r.Location,
		Shift:      schedule.Resolve(dept),
		Punches:    punches,
		Leaves:     leaves,
		Holidays:   holidays,
	})

	return Aggregate(emp.ID, emp.Name, from, to, days), nil
}
