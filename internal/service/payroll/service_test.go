package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/holiday"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/payroll"
	attendancesvc "github.com/easycodingbd/hazira-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	salaries  map[string]payroll.EmployeeSalary
	summaries []payroll.SalarySummary
}

func (f *fakePayrollRepo) UpsertSalary(_ context.Context, salary payroll.EmployeeSalary) (payroll.EmployeeSalary, error) {
	if f.salaries == nil {
		f.salaries = make(map[string]payroll.EmployeeSalary)
	}
	f.salaries[salary.EmployeeID] = salary
	return salary, nil
}

func (f *fakePayrollRepo) GetSalary(_ context.Context, employeeID string, _ string) (payroll.EmployeeSalary, error) {
	salary, ok := f.salaries[employeeID]
	if !ok {
		return payroll.EmployeeSalary{}, payroll.ErrSalaryNotConfigured
	}
	return salary, nil
}

func (f *fakePayrollRepo) ReplaceSummary(_ context.Context, summary payroll.SalarySummary) (payroll.SalarySummary, error) {
	kept := f.summaries[:0]
	for _, s := range f.summaries {
		if s.EmployeeID != summary.EmployeeID || s.Month != summary.Month {
			kept = append(kept, s)
		}
	}
	f.summaries = append(kept, summary)
	return summary, nil
}

func (f *fakePayrollRepo) ListSummaries(_ context.Context, companyID string, month string) ([]payroll.SalarySummary, error) {
	var out []payroll.SalarySummary
	for _, s := range f.summaries {
		if s.CompanyID == companyID && s.Month == month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) GetSummary(_ context.Context, employeeID string, month string, _ string) (payroll.SalarySummary, error) {
	for _, s := range f.summaries {
		if s.EmployeeID == employeeID && s.Month == month {
			return s, nil
		}
	}
	return payroll.SalarySummary{}, payroll.ErrSummaryNotFound
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (f *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *stubEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id && emp.CompanyID == companyID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *stubEmployeeRepo) GetByDeviceUserID(_ context.Context, _ string, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *stubEmployeeRepo) List(_ context.Context, _ employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}

func (f *stubEmployeeRepo) ListByDepartment(_ context.Context, _ string, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *stubEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *stubEmployeeRepo) CountActive(_ context.Context, _ string) (int64, error) {
	return int64(len(f.employees)), nil
}

type stubDepartmentRepo struct {
	departments []department.Department
}

func (f *stubDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	return d, nil
}

func (f *stubDepartmentRepo) GetByID(_ context.Context, id string, companyID string) (department.Department, error) {
	for _, d := range f.departments {
		if d.ID == id && d.CompanyID == companyID {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *stubDepartmentRepo) List(_ context.Context, _ string) ([]department.Department, error) {
	return f.departments, nil
}

func (f *stubDepartmentRepo) Update(_ context.Context, _ department.Department) error { return nil }
func (f *stubDepartmentRepo) Delete(_ context.Context, _ string, _ string) error      { return nil }

func (f *stubDepartmentRepo) ListWithDevices(_ context.Context, _ string) ([]department.Department, error) {
	return nil, nil
}

func (f *stubDepartmentRepo) ListAllWithDevices(_ context.Context) ([]department.Department, error) {
	return nil, nil
}

type stubPunchRepo struct{}

func (stubPunchRepo) UpsertFirstIn(_ context.Context, _ attendance.PunchEvent, _, _ time.Time) (bool, error) {
	return false, nil
}

func (stubPunchRepo) UpsertLastOut(_ context.Context, _ attendance.PunchEvent, _, _ time.Time) (bool, error) {
	return false, nil
}

func (stubPunchRepo) Insert(_ context.Context, _ attendance.PunchEvent) (bool, error) {
	return false, nil
}

func (stubPunchRepo) ListByEmployeeRange(_ context.Context, _ string, _, _ time.Time, _ string) ([]attendance.PunchEvent, error) {
	return nil, nil
}

func (stubPunchRepo) DeleteByEmployeeDay(_ context.Context, _ string, _, _ time.Time, _ string) (int64, error) {
	return 0, nil
}

type stubLeaveRepo struct{}

func (stubLeaveRepo) Create(_ context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	return l, nil
}

func (stubLeaveRepo) GetByID(_ context.Context, _ string, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}

func (stubLeaveRepo) List(_ context.Context, _ leave.ListLeaveFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (stubLeaveRepo) Update(_ context.Context, _ leave.LeaveRequest) error { return nil }

func (stubLeaveRepo) ListApprovedInRange(_ context.Context, _ string, _, _ time.Time, _ string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (stubLeaveRepo) HasApprovedOverlap(_ context.Context, _ string, _, _ time.Time, _ string) (bool, error) {
	return false, nil
}

type stubHolidayRepo struct{}

func (stubHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (stubHolidayRepo) Delete(_ context.Context, _ string, _ string) error { return nil }

func (stubHolidayRepo) ListInRange(_ context.Context, _ string, _, _ time.Time) ([]holiday.Holiday, error) {
	return nil, nil
}

func TestGeneratePayrollSkipsFailingEmployees(t *testing.T) {
	ctx := context.Background()
	dhaka, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)

	payrollRepo := &fakePayrollRepo{salaries: map[string]payroll.EmployeeSalary{
		"emp-1": {
			CompanyID:  "company-1",
			EmployeeID: "emp-1",
			BaseSalary: dec("30000"),
		},
		"emp-2": {
			CompanyID:  "company-1",
			EmployeeID: "emp-2",
			BaseSalary: dec("25000"),
		},
	}}
	employeeRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", CompanyID: "company-1", DepartmentID: "dept-1", Name: "Rahim", Active: true},
		// Points at a department that no longer exists.
		{ID: "emp-2", CompanyID: "company-1", DepartmentID: "dept-gone", Name: "Karim", Active: true},
		// No salary configured.
		{ID: "emp-3", CompanyID: "company-1", DepartmentID: "dept-1", Name: "Salma", Active: true},
	}}
	departmentRepo := &stubDepartmentRepo{departments: []department.Department{
		{ID: "dept-1", CompanyID: "company-1", Name: "Production"},
	}}

	reconciler := attendancesvc.NewReconciler(stubPunchRepo{}, stubLeaveRepo{}, stubHolidayRepo{}, dhaka)
	svc := NewPayrollService(payrollRepo, employeeRepo, departmentRepo, reconciler, dhaka)

	responses, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{
		CompanyID: "company-1",
		Month:     "2025-06",
	})
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, "emp-1", responses[0].EmployeeID)
	assert.Len(t, payrollRepo.summaries, 1)
}
