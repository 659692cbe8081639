package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/holiday"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id && emp.CompanyID == companyID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByDeviceUserID(_ context.Context, deviceUserID string, companyID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.DeviceUserID == deviceUserID && emp.CompanyID == companyID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) ListByDepartment(_ context.Context, departmentID string, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.DepartmentID == departmentID && emp.CompanyID == companyID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) CountActive(_ context.Context, _ string) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeDepartmentRepo struct {
	departments []department.Department
}

func (f *fakeDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	f.departments = append(f.departments, d)
	return d, nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string, companyID string) (department.Department, error) {
	for _, d := range f.departments {
		if d.ID == id && d.CompanyID == companyID {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) List(_ context.Context, _ string) ([]department.Department, error) {
	return f.departments, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, _ department.Department) error { return nil }
func (f *fakeDepartmentRepo) Delete(_ context.Context, _ string, _ string) error      { return nil }

func (f *fakeDepartmentRepo) ListWithDevices(_ context.Context, companyID string) ([]department.Department, error) {
	var out []department.Department
	for _, d := range f.departments {
		if d.CompanyID == companyID && d.DeviceHost != nil {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDepartmentRepo) ListAllWithDevices(_ context.Context) ([]department.Department, error) {
	var out []department.Department
	for _, d := range f.departments {
		if d.DeviceHost != nil {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeGateway struct {
	records    map[string][]device.Record // keyed by host
	sinceCalls []time.Time
}

func (f *fakeGateway) FetchRecords(_ context.Context, host string, _ int, since time.Time) ([]device.Record, error) {
	f.sinceCalls = append(f.sinceCalls, since)
	return f.records[host], nil
}

type fakeLeaveRepo struct {
	leaves []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(_ context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.leaves = append(f.leaves, l)
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) List(_ context.Context, _ leave.ListLeaveFilter) ([]leave.LeaveRequest, int64, error) {
	return f.leaves, int64(len(f.leaves)), nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, _ leave.LeaveRequest) error { return nil }

func (f *fakeLeaveRepo) ListApprovedInRange(_ context.Context, employeeID string, _, _ time.Time, _ string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID && l.Status == leave.StatusApproved {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) HasApprovedOverlap(_ context.Context, _ string, _, _ time.Time, _ string) (bool, error) {
	return false, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, _ string, _ string) error { return nil }

func (f *fakeHolidayRepo) ListInRange(_ context.Context, companyID string, _, _ time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.CompanyID == companyID {
			out = append(out, h)
		}
	}
	return out, nil
}

type testWorld struct {
	punches     *fakePunchRepo
	employees   *fakeEmployeeRepo
	departments *fakeDepartmentRepo
	gateway     *fakeGateway
	svc         attendance.AttendanceService
}

func newTestWorld() *testWorld {
	host := "192.168.0.10"
	w := &testWorld{
		punches: &fakePunchRepo{},
		employees: &fakeEmployeeRepo{employees: []employee.Employee{{
			ID:           "emp-1",
			CompanyID:    "company-1",
			DepartmentID: "dept-1",
			Name:         "Rahim",
			DeviceUserID: "42",
			Active:       true,
		}}},
		departments: &fakeDepartmentRepo{departments: []department.Department{{
			ID:         "dept-1",
			CompanyID:  "company-1",
			Name:       "Production",
			DeviceHost: &host,
			DevicePort: 4370,
		}}},
		gateway: &fakeGateway{records: map[string][]device.Record{}},
	}
	reconciler := NewReconciler(w.punches, &fakeLeaveRepo{}, &fakeHolidayRepo{}, dhaka)
	w.svc = NewAttendanceService(reconciler, w.employees, w.departments, w.gateway, testAttendanceConfig())
	return w
}

func TestSyncDevicesFetchesFromImportCutoff(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld()

	// A stored punch newer than another terminal's pending history must
	// not narrow the fetch window.
	w.punches.punches = append(w.punches.punches, attendance.PunchEvent{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		Timestamp:  time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		Direction:  attendance.DirectionIn,
		Source:     attendance.SourceImport,
	})

	_, err := w.svc.SyncDevices(ctx, attendance.SyncRequest{CompanyID: "company-1"})
	require.NoError(t, err)

	require.Len(t, w.gateway.sinceCalls, 1)
	assert.Equal(t, testAttendanceConfig().ImportCutoff, w.gateway.sinceCalls[0])
}

func TestSyncDevicesSkipsUnknownDeviceUsers(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld()

	w.gateway.records["192.168.0.10"] = []device.Record{
		{DeviceUserID: "42", Timestamp: time.Date(2025, 6, 2, 10, 30, 0, 0, dhaka).UTC()},
		{DeviceUserID: "999", Timestamp: time.Date(2025, 6, 2, 10, 31, 0, 0, dhaka).UTC()},
		{DeviceUserID: "999", Timestamp: time.Date(2025, 6, 2, 20, 30, 0, 0, dhaka).UTC()},
	}

	resp, err := w.svc.SyncDevices(ctx, attendance.SyncRequest{CompanyID: "company-1"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.Nil(t, result.Error)
	assert.Equal(t, 3, result.FetchedRecords)
	assert.Equal(t, 1, result.StoredPunches)
	assert.Equal(t, 2, result.SkippedRecords)
	assert.Len(t, w.punches.punches, 1)
}

func TestIngestPushStoresEveryEvent(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld()

	err := w.svc.IngestPush(ctx, attendance.PushBatchRequest{
		CompanyID: "company-1",
		Events: []attendance.PushEventRequest{
			{DeviceUserID: "42", Timestamp: "2025-06-02 09:00:00"},
			// Three minutes apart: the import debounce must not apply.
			{DeviceUserID: "42", Timestamp: "2025-06-02 09:03:00"},
			{DeviceUserID: "42", Timestamp: "2025-06-02 20:30:00"},
			// Unmapped users are skipped, never fatal.
			{DeviceUserID: "999", Timestamp: "2025-06-02 09:05:00"},
		},
	})
	require.NoError(t, err)

	require.Len(t, w.punches.punches, 3)
	assert.Equal(t, attendance.DirectionIn, w.punches.punches[0].Direction)
	assert.Equal(t, attendance.DirectionIn, w.punches.punches[1].Direction)
	assert.Equal(t, attendance.DirectionOut, w.punches.punches[2].Direction)

	// Redelivery of the same batch stores nothing new.
	err = w.svc.IngestPush(ctx, attendance.PushBatchRequest{
		CompanyID: "company-1",
		Events: []attendance.PushEventRequest{
			{DeviceUserID: "42", Timestamp: "2025-06-02 09:00:00"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, w.punches.punches, 3)
}

func TestGetSummaryAcceptsHumanDates(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld()

	w.punches.punches = []attendance.PunchEvent{
		punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 10, 30),
		punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 2, 20, 30),
	}

	for _, dates := range [][2]string{
		{"2025-06-02", "2025-06-02"},
		{"Jun 2, 2025", "2 June 2025"},
		{"02/06/2025", "2025/06/02"},
	} {
		resp, err := w.svc.GetSummary(ctx, attendance.SummaryRequest{
			CompanyID:  "company-1",
			EmployeeID: "emp-1",
			From:       dates[0],
			To:         dates[1],
		})
		require.NoError(t, err, "from %q to %q", dates[0], dates[1])
		assert.Equal(t, 1, resp.PresentDays)
		assert.Equal(t, "2025-06-02", resp.From)
	}
}

func TestCorrectDayReplacesPunches(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld()

	w.punches.punches = []attendance.PunchEvent{
		punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 12, 45),
		punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 2, 13, 5),
	}

	in := "10:30"
	out := "20:30"
	err := w.svc.CorrectDay(ctx, attendance.CorrectDayRequest{
		CompanyID:  "company-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		FirstIn:    &in,
		LastOut:    &out,
	})
	require.NoError(t, err)

	require.Len(t, w.punches.punches, 2)
	for _, p := range w.punches.punches {
		assert.Equal(t, attendance.SourceManual, p.Source)
	}

	day, err := w.svc.GetDay(ctx, attendance.DayRequest{
		CompanyID:  "company-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
	})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), day.Status)
	assert.Equal(t, 600, day.WorkedMinutes)
	require.NotNil(t, day.FirstIn)
	assert.Equal(t, "10:30:00", *day.FirstIn)
}

func TestDeleteDayRemovesPunches(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld()

	w.punches.punches = []attendance.PunchEvent{
		punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 10, 30),
		punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 2, 20, 30),
	}

	req := attendance.DayRequest{
		CompanyID:  "company-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
	}
	require.NoError(t, w.svc.DeleteDay(ctx, req))
	assert.Empty(t, w.punches.punches)

	assert.ErrorIs(t, w.svc.DeleteDay(ctx, req), attendance.ErrPunchNotFound)
}
