package payroll

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/payroll"
	attendancesvc "github.com/easycodingbd/hazira-backend-go/internal/service/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/service/schedule"
	"github.com/shopspring/decimal"
)

type payrollService struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	reconciler     *attendancesvc.Reconciler
	location       *time.Location
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	reconciler *attendancesvc.Reconciler,
	location *time.Location,
) payroll.PayrollService {
	return &payrollService{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		reconciler:     reconciler,
		location:       location,
	}
}

// SetSalary implements payroll.PayrollService.
func (s *payrollService) SetSalary(ctx context.Context, req payroll.SetSalaryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID); err != nil {
		return err
	}

	salary := payroll.EmployeeSalary{
		CompanyID:    req.CompanyID,
		EmployeeID:   req.EmployeeID,
		BaseSalary:   decimal.RequireFromString(req.BaseSalary),
		BankTransfer: decimal.Zero,
		BonusMonth:   req.BonusMonth,
	}
	if req.BankTransfer != "" {
		salary.BankTransfer = decimal.RequireFromString(req.BankTransfer)
	}
	if req.BonusPercent != nil {
		p := decimal.RequireFromString(*req.BonusPercent)
		salary.BonusPercent = &p
	}
	if req.BonusFixed != nil {
		f := decimal.RequireFromString(*req.BonusFixed)
		salary.BonusFixed = &f
	}

	_, err := s.payrollRepo.UpsertSalary(ctx, salary)
	return err
}

// GeneratePayroll implements payroll.PayrollService. Each run replaces
// the month's summaries, so regeneration after corrections is safe.
func (s *payrollService) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.SalarySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	monthStart, err := time.ParseInLocation("2006-01", req.Month, s.location)
	if err != nil {
		return nil, payroll.ErrInvalidMonth
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	var employees []employee.Employee
	if req.EmployeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID, req.CompanyID)
		if err != nil {
			return nil, err
		}
		employees = []employee.Employee{emp}
	} else {
		employees, _, err = s.employeeRepo.List(ctx, employee.ListEmployeeFilter{
			CompanyID:  req.CompanyID,
			ActiveOnly: true,
			PageSize:   10000,
		})
		if err != nil {
			return nil, err
		}
	}

	departments := make(map[string]department.Department)

	var responses []payroll.SalarySummaryResponse
	for _, emp := range employees {
		salary, err := s.payrollRepo.GetSalary(ctx, emp.ID, req.CompanyID)
		if err != nil {
			if errors.Is(err, payroll.ErrSalaryNotConfigured) {
				slog.Warn("Skipping employee without salary", "employee_id", emp.ID, "month", req.Month)
				continue
			}
			return nil, err
		}

		dept, ok := departments[emp.DepartmentID]
		if !ok {
			dept, err = s.departmentRepo.GetByID(ctx, emp.DepartmentID, req.CompanyID)
			if err != nil {
				slog.Warn("Skipping employee with unresolved department", "employee_id", emp.ID, "month", req.Month, "error", err)
				continue
			}
			departments[emp.DepartmentID] = dept
		}

		summaryRange, err := s.reconciler.ReconcileRange(ctx, emp, dept, monthStart, monthEnd)
		if err != nil {
			slog.Error("Skipping employee after reconciliation failure", "employee_id", emp.ID, "month", req.Month, "error", err)
			continue
		}

		shift := schedule.Resolve(dept)
		sheet := Calculate(CalculationInput{
			Month:         monthStart.Month(),
			DaysInMonth:   monthEnd.Day(),
			WeeklyOffDays: summaryRange.WeeklyOffDays,
			HolidayDays:   summaryRange.HolidayDays,
			PresentDays:   summaryRange.PresentDays,
			AbsentDays:    summaryRange.AbsentDays,
			LeaveDays:     summaryRange.LeaveDays,
			ShiftHours:    decimal.NewFromFloat(shift.Duration().Hours()),
			WorkedMinutes: summaryRange.WorkedMinutes,
			LateMinutes:   summaryRange.LateMinutes,
			Salary:        salary,
		})

		sheet.Month = req.Month
		stored, err := s.payrollRepo.ReplaceSummary(ctx, sheet)
		if err != nil {
			return nil, err
		}
		stored.EmployeeName = &emp.Name

		responses = append(responses, payroll.ToSalarySummaryResponse(stored))
	}

	slog.Info("Payroll generated", "company_id", req.CompanyID, "month", req.Month, "employees", len(responses))
	return responses, nil
}

// ListPayroll implements payroll.PayrollService.
func (s *payrollService) ListPayroll(ctx context.Context, companyID string, month string) ([]payroll.SalarySummaryResponse, error) {
	req := payroll.GeneratePayrollRequest{Month: month}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	summaries, err := s.payrollRepo.ListSummaries(ctx, companyID, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SalarySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, payroll.ToSalarySummaryResponse(s))
	}
	return responses, nil
}
