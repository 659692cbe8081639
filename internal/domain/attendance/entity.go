package attendance

import (
	"time"
)

// DayStatus classifies a single calendar day for one employee. Exactly
// one status applies per day.
type DayStatus string

const (
	StatusPresent       DayStatus = "present"
	StatusAbsent        DayStatus = "absent"
	StatusLeave         DayStatus = "leave"
	StatusWeeklyOff     DayStatus = "weekly_off"
	StatusPublicHoliday DayStatus = "public_holiday"
)

// PunchDirection marks which side of the day a raw scan belongs to.
type PunchDirection string

const (
	DirectionIn  PunchDirection = "in"
	DirectionOut PunchDirection = "out"
)

// PunchEvent is a raw scan after ingestion. At most one In and one Out
// survive per employee per day: the earliest In and the latest Out.
type PunchEvent struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Timestamp  time.Time
	Direction  PunchDirection
	Source     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Punch sources.
const (
	SourceImport = "import"
	SourcePush   = "push"
	SourceManual = "manual"
)

// DayRecord is the reconciled view of one employee-day.
type DayRecord struct {
	EmployeeID    string
	Date          time.Time
	Status        DayStatus
	FirstIn       *time.Time
	LastOut       *time.Time
	WorkedMinutes int
	LateMinutes   int
	OvertimeMins  int
	ShortfallMins int
	LeaveType     *string
	HolidayName   *string
}

// Summary aggregates an employee's day records over a date range. The
// five status counts always sum to the number of days in the range.
type Summary struct {
	EmployeeID       string
	EmployeeName     string
	From             time.Time
	To               time.Time
	PresentDays      int
	AbsentDays       int
	LeaveDays        int
	WeeklyOffDays    int
	HolidayDays      int
	WorkedMinutes    int
	LateMinutes      int
	OvertimeMinutes  int
	ShortfallMinutes int
	Days             []DayRecord
}

// ImportResult reports the outcome of pulling one terminal's history.
// Failures are isolated per device: one unreachable terminal never
// blocks the others.
type ImportResult struct {
	DepartmentID   string
	DeviceHost     string
	FetchedRecords int
	StoredPunches  int
	SkippedRecords int
	Error          *string
}
