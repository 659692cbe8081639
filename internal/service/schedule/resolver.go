// Package schedule resolves the effective shift of an employee from
// department settings, falling back to company-wide defaults.
package schedule

import (
	"fmt"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
)

// Shift is a resolved daily schedule. Start and End are offsets from
// local midnight, so they apply to any date without timezone juggling.
type Shift struct {
	Start     time.Duration
	End       time.Duration
	WeeklyOff time.Weekday
}

// Duration returns the nominal length of the shift.
func (s Shift) Duration() time.Duration {
	return s.End - s.Start
}

// StartOn anchors the shift start to a local calendar date.
func (s Shift) StartOn(date time.Time) time.Time {
	return date.Add(s.Start)
}

// EndOn anchors the shift end to a local calendar date.
func (s Shift) EndOn(date time.Time) time.Time {
	return date.Add(s.End)
}

// Resolve builds the effective shift for a department. Missing or
// malformed settings fall back to the defaults rather than failing:
// classification must always have a schedule to work against.
func Resolve(d department.Department) Shift {
	shift := Shift{
		Start:     mustClockOffset(department.DefaultShiftStart),
		End:       mustClockOffset(department.DefaultShiftEnd),
		WeeklyOff: time.Friday,
	}

	if offset, err := clockOffset(d.ShiftStart); err == nil {
		shift.Start = offset
	}
	if offset, err := clockOffset(d.ShiftEnd); err == nil {
		shift.End = offset
	}
	if wd, ok := parseWeekday(d.WeeklyOffDay); ok {
		shift.WeeklyOff = wd
	}

	// A shift that ends at or before it starts would make every worked
	// minute overtime; fall back entirely.
	if shift.End <= shift.Start {
		shift.Start = mustClockOffset(department.DefaultShiftStart)
		shift.End = mustClockOffset(department.DefaultShiftEnd)
	}

	return shift
}

func clockOffset(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func mustClockOffset(s string) time.Duration {
	offset, err := clockOffset(s)
	if err != nil {
		panic(err)
	}
	return offset
}

func parseWeekday(name string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == name {
			return wd, true
		}
	}
	return time.Sunday, false
}
