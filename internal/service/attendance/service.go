package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/config"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/device"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
)

type attendanceService struct {
	reconciler     *Reconciler
	punchRepo      attendance.PunchRepository
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	gateway        device.Gateway

	location          *time.Location
	importCutoff      time.Time
	debounceWindow    time.Duration
	pushOutCutoffHour int
}

func NewAttendanceService(
	reconciler *Reconciler,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	gateway device.Gateway,
	cfg config.AttendanceConfig,
) attendance.AttendanceService {
	return &attendanceService{
		reconciler:        reconciler,
		punchRepo:         reconciler.PunchRepo,
		employeeRepo:      employeeRepo,
		departmentRepo:    departmentRepo,
		gateway:           gateway,
		location:          reconciler.Location,
		importCutoff:      cfg.ImportCutoff,
		debounceWindow:    cfg.DebounceWindow,
		pushOutCutoffHour: cfg.PushOutCutoffHour,
	}
}

// SyncDevices implements attendance.AttendanceService. Each terminal is
// pulled and ingested independently; an unreachable device produces a
// per-device error in the result, never a failed run.
func (s *attendanceService) SyncDevices(ctx context.Context, req attendance.SyncRequest) (attendance.SyncResponse, error) {
	var departments []department.Department
	var err error

	if req.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID, req.CompanyID)
		if err != nil {
			return attendance.SyncResponse{}, err
		}
		if dept.DeviceHost == nil {
			return attendance.SyncResponse{}, attendance.ErrNoDeviceConfigured
		}
		departments = []department.Department{dept}
	} else {
		departments, err = s.departmentRepo.ListWithDevices(ctx, req.CompanyID)
		if err != nil {
			return attendance.SyncResponse{}, err
		}
	}

	results := make([]attendance.ImportResult, 0, len(departments))
	for _, dept := range departments {
		results = append(results, s.syncDevice(ctx, dept))
	}

	return attendance.SyncResponse{Results: results}, nil
}

// SyncAll implements attendance.AttendanceService.
func (s *attendanceService) SyncAll(ctx context.Context) error {
	departments, err := s.departmentRepo.ListAllWithDevices(ctx)
	if err != nil {
		return err
	}

	for _, dept := range departments {
		s.syncDevice(ctx, dept)
	}
	return nil
}

func (s *attendanceService) syncDevice(ctx context.Context, dept department.Department) attendance.ImportResult {
	result := attendance.ImportResult{
		DepartmentID: dept.ID,
		DeviceHost:   *dept.DeviceHost,
	}

	// The full window since the import cutoff is pulled every run so a
	// late-arriving morning scan still lands. Re-delivered records are
	// deduplicated by the upsert.
	records, err := s.gateway.FetchRecords(ctx, *dept.DeviceHost, dept.DevicePort, s.importCutoff)
	if err != nil {
		slog.Error("Device fetch failed", "department_id", dept.ID, "host", *dept.DeviceHost, "error", err)
		msg := err.Error()
		result.Error = &msg
		return result
	}
	result.FetchedRecords = len(records)

	byDeviceUser := make(map[string][]time.Time)
	for _, r := range records {
		byDeviceUser[r.DeviceUserID] = append(byDeviceUser[r.DeviceUserID], r.Timestamp)
	}

	for deviceUserID, timestamps := range byDeviceUser {
		emp, err := s.employeeRepo.GetByDeviceUserID(ctx, deviceUserID, dept.CompanyID)
		if err != nil {
			slog.Warn("Scans from unenrolled device user skipped",
				"device_user_id", deviceUserID,
				"department_id", dept.ID,
				"records", len(timestamps),
			)
			result.SkippedRecords += len(timestamps)
			continue
		}

		stored, skipped, err := s.ingestTimestamps(ctx, emp.ID, dept.CompanyID, attendance.SourceImport, timestamps)
		result.StoredPunches += stored
		result.SkippedRecords += skipped
		if err != nil {
			slog.Error("Punch ingestion failed", "employee_id", emp.ID, "error", err)
			msg := err.Error()
			result.Error = &msg
			return result
		}
	}

	slog.Info("Device sync completed",
		"department_id", dept.ID,
		"host", *dept.DeviceHost,
		"fetched", result.FetchedRecords,
		"stored", result.StoredPunches,
		"skipped", result.SkippedRecords,
	)
	return result
}

// IngestPush implements attendance.AttendanceService. Push events skip
// the import pipeline: each one is classified by the afternoon cutoff
// and stored as its own row, deduplicated on exact timestamp. The day
// classifier reduces them to a first-in/last-out pair later.
func (s *attendanceService) IngestPush(ctx context.Context, req attendance.PushBatchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for _, event := range req.Events {
		ts, err := validator.ParseTimestampInLocation(event.Timestamp, s.location)
		if err != nil {
			return err
		}

		emp, err := s.employeeRepo.GetByDeviceUserID(ctx, event.DeviceUserID, req.CompanyID)
		if err != nil {
			slog.Warn("Push event from unmapped device user", "device_user_id", event.DeviceUserID)
			continue
		}

		punch := attendance.PunchEvent{
			EmployeeID: emp.ID,
			CompanyID:  req.CompanyID,
			Timestamp:  ts.UTC(),
			Direction:  inferDirection(ts.In(s.location), s.pushOutCutoffHour),
			Source:     attendance.SourcePush,
		}
		if _, err := s.punchRepo.Insert(ctx, punch); err != nil {
			return err
		}
	}
	return nil
}

// RecordManualPunch implements attendance.AttendanceService.
func (s *attendanceService) RecordManualPunch(ctx context.Context, req attendance.ManualPunchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		return err
	}

	ts, err := validator.ParseTimestampInLocation(req.Timestamp, s.location)
	if err != nil {
		return err
	}

	local := ts.In(s.location)
	dayStart, dayEnd := dayWindow(local)

	punch := attendance.PunchEvent{
		EmployeeID: emp.ID,
		CompanyID:  req.CompanyID,
		Timestamp:  ts.UTC(),
		Direction:  attendance.PunchDirection(req.Direction),
		Source:     attendance.SourceManual,
	}

	if punch.Direction == attendance.DirectionIn {
		_, err = s.punchRepo.UpsertFirstIn(ctx, punch, dayStart, dayEnd)
	} else {
		_, err = s.punchRepo.UpsertLastOut(ctx, punch, dayStart, dayEnd)
	}
	return err
}

// GetDay implements attendance.AttendanceService.
func (s *attendanceService) GetDay(ctx context.Context, req attendance.DayRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, emp.DepartmentID, req.CompanyID)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	day := s.localDate(req.Date)
	summary, err := s.reconciler.ReconcileRange(ctx, emp, dept, day, day)
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}
	if len(summary.Days) == 0 {
		return attendance.DayRecordResponse{}, attendance.ErrPunchNotFound
	}

	return attendance.ToDayRecordResponse(summary.Days[0], s.location), nil
}

// CorrectDay implements attendance.AttendanceService. The day's stored
// punches are replaced wholesale with the supplied pair so a corrected
// day carries no trace of the bad scans.
func (s *attendanceService) CorrectDay(ctx context.Context, req attendance.CorrectDayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		return err
	}

	day := s.localDate(req.Date)
	dayStart, dayEnd := dayWindow(day)

	if _, err := s.punchRepo.DeleteByEmployeeDay(ctx, emp.ID, dayStart, dayEnd, req.CompanyID); err != nil {
		return err
	}

	if req.FirstIn != nil {
		punch := attendance.PunchEvent{
			EmployeeID: emp.ID,
			CompanyID:  req.CompanyID,
			Timestamp:  s.atClock(day, *req.FirstIn).UTC(),
			Direction:  attendance.DirectionIn,
			Source:     attendance.SourceManual,
		}
		if _, err := s.punchRepo.UpsertFirstIn(ctx, punch, dayStart, dayEnd); err != nil {
			return err
		}
	}
	if req.LastOut != nil {
		punch := attendance.PunchEvent{
			EmployeeID: emp.ID,
			CompanyID:  req.CompanyID,
			Timestamp:  s.atClock(day, *req.LastOut).UTC(),
			Direction:  attendance.DirectionOut,
			Source:     attendance.SourceManual,
		}
		if _, err := s.punchRepo.UpsertLastOut(ctx, punch, dayStart, dayEnd); err != nil {
			return err
		}
	}

	return nil
}

// DeleteDay implements attendance.AttendanceService.
func (s *attendanceService) DeleteDay(ctx context.Context, req attendance.DayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		return err
	}

	day := s.localDate(req.Date)
	dayStart, dayEnd := dayWindow(day)

	deleted, err := s.punchRepo.DeleteByEmployeeDay(ctx, emp.ID, dayStart, dayEnd, req.CompanyID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return attendance.ErrPunchNotFound
	}
	return nil
}

// GetSummary implements attendance.AttendanceService.
func (s *attendanceService) GetSummary(ctx context.Context, req attendance.SummaryRequest) (attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, emp.DepartmentID, req.CompanyID)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	summary, err := s.reconciler.ReconcileRange(ctx, emp, dept, s.localDate(req.From), s.localDate(req.To))
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	return attendance.ToSummaryResponse(summary, s.location), nil
}

// localDate rebuilds a validated date string as local midnight.
func (s *attendanceService) localDate(value string) time.Time {
	parsed, _ := validator.ParseFlexibleDate(value)
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.location)
}

// atClock places an HH:MM clock value on the given local day.
func (s *attendanceService) atClock(day time.Time, clock string) time.Time {
	t, _ := validator.IsValidClockTime(clock)
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, s.location)
}
