package department

import "time"

// Schedule defaults applied when a department is created without
// explicit values.
const (
	DefaultWeeklyOffDay = "Friday"
	DefaultShiftStart   = "10:30"
	DefaultShiftEnd     = "20:30"
)

// Department groups employees under one fingerprint terminal and one
// shift schedule. DeviceHost is nil for departments without a terminal;
// their employees can still be covered by push or manual punches.
type Department struct {
	ID           string
	CompanyID    string
	Name         string
	DeviceHost   *string
	DevicePort   int
	WeeklyOffDay string
	ShiftStart   string
	ShiftEnd     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
