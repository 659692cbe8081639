package attendance

import (
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/holiday"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
	"github.com/easycodingbd/hazira-backend-go/internal/service/schedule"
)

// ReconcileInput carries everything needed to classify one employee's
// days. From and To are local midnights in Location; the range is
// inclusive on both ends.
type ReconcileInput struct {
	EmployeeID string
	From       time.Time
	To         time.Time
	Location   *time.Location
	Shift      schedule.Shift
	Punches    []attendance.PunchEvent
	Leaves     []leave.LeaveRequest
	Holidays   []holiday.Holiday
}

type dayPunches struct {
	firstIn *time.Time
	lastOut *time.Time
}

// Reconcile classifies every day in the range and derives durations.
// Classification precedence: public holiday, then weekly off, then
// approved leave, then present when any punch exists, else absent.
// Exactly one status applies per day, so the five counts always
// partition the range.
func Reconcile(in ReconcileInput) []attendance.DayRecord {
	byDay := bucketPunches(in.Punches, in.Location)
	holidaysByDay := bucketHolidays(in.Holidays, in.From, in.To)

	var records []attendance.DayRecord
	for day := in.From; !day.After(in.To); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		punches := byDay[key]

		record := attendance.DayRecord{
			EmployeeID: in.EmployeeID,
			Date:       day,
			FirstIn:    punches.firstIn,
			LastOut:    punches.lastOut,
		}

		lv := leaveCovering(in.Leaves, day)

		switch {
		case holidaysByDay[key] != nil:
			record.Status = attendance.StatusPublicHoliday
			name := holidaysByDay[key].Name
			record.HolidayName = &name

		case day.Weekday() == in.Shift.WeeklyOff:
			record.Status = attendance.StatusWeeklyOff

		case lv != nil:
			record.Status = attendance.StatusLeave
			record.LeaveType = &lv.LeaveType
			// A leave day is credited the full shift regardless of
			// punches; a punch-derived late figure stays informational.
			record.WorkedMinutes = int(in.Shift.Duration().Minutes())
			record.LateMinutes = lateMinutes(punches.firstIn, in.Shift.StartOn(day))

		case punches.firstIn != nil || punches.lastOut != nil:
			record.Status = attendance.StatusPresent
			fillPresentDurations(&record, punches, in.Shift, day)

		default:
			record.Status = attendance.StatusAbsent
		}

		records = append(records, record)
	}
	return records
}

// fillPresentDurations derives worked, late, overtime and shortfall for
// a present day. Worked time starts at the later of first In and shift
// start; overtime and shortfall are mutually exclusive against the
// nominal shift length.
func fillPresentDurations(record *attendance.DayRecord, punches dayPunches, shift schedule.Shift, day time.Time) {
	shiftStart := shift.StartOn(day)

	record.LateMinutes = lateMinutes(punches.firstIn, shiftStart)

	if punches.firstIn == nil || punches.lastOut == nil {
		// A single-sided day yields zero worked time but still counts
		// as present; the full shift becomes shortfall.
		record.ShortfallMins = int(shift.Duration().Minutes())
		return
	}

	effectiveStart := *punches.firstIn
	if shiftStart.After(effectiveStart) {
		effectiveStart = shiftStart
	}

	worked := punches.lastOut.Sub(effectiveStart)
	if worked < 0 {
		worked = 0
	}
	record.WorkedMinutes = int(worked.Minutes())

	nominal := shift.Duration()
	if worked > nominal {
		record.OvertimeMins = int((worked - nominal).Minutes())
	} else {
		record.ShortfallMins = int((nominal - worked).Minutes())
	}
}

func lateMinutes(firstIn *time.Time, shiftStart time.Time) int {
	if firstIn == nil || !firstIn.After(shiftStart) {
		return 0
	}
	return int(firstIn.Sub(shiftStart).Minutes())
}

// Aggregate folds day records into a range summary. Leave days carry
// credited worked minutes, so the worked total reflects payable time
// rather than raw punch time.
func Aggregate(employeeID, employeeName string, from, to time.Time, days []attendance.DayRecord) attendance.Summary {
	summary := attendance.Summary{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		From:         from,
		To:           to,
		Days:         days,
	}

	for _, d := range days {
		switch d.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLeave:
			summary.LeaveDays++
		case attendance.StatusWeeklyOff:
			summary.WeeklyOffDays++
		case attendance.StatusPublicHoliday:
			summary.HolidayDays++
		}

		summary.WorkedMinutes += d.WorkedMinutes
		summary.LateMinutes += d.LateMinutes
		summary.OvertimeMinutes += d.OvertimeMins
		summary.ShortfallMinutes += d.ShortfallMins
	}
	return summary
}

func bucketPunches(punches []attendance.PunchEvent, loc *time.Location) map[string]dayPunches {
	byDay := make(map[string]dayPunches)
	for i := range punches {
		p := punches[i]
		local := p.Timestamp.In(loc)
		key := local.Format("2006-01-02")
		bucket := byDay[key]

		switch p.Direction {
		case attendance.DirectionIn:
			if bucket.firstIn == nil || local.Before(*bucket.firstIn) {
				ts := local
				bucket.firstIn = &ts
			}
		case attendance.DirectionOut:
			if bucket.lastOut == nil || local.After(*bucket.lastOut) {
				ts := local
				bucket.lastOut = &ts
			}
		}
		byDay[key] = bucket
	}
	return byDay
}

// Holiday and leave dates are calendar dates, not instants, so they are
// compared by their stored date without timezone conversion.

// bucketHolidays expands each inclusive holiday interval into per-day
// entries, clipped to the reconciled range so an open-ended festival
// spanning the boundary only contributes the days inside it.
func bucketHolidays(holidays []holiday.Holiday, from, to time.Time) map[string]*holiday.Holiday {
	fromKey := from.Format("2006-01-02")
	toKey := to.Format("2006-01-02")

	byDay := make(map[string]*holiday.Holiday)
	for i := range holidays {
		h := holidays[i]
		for d := h.StartDate; !d.After(h.EndDate); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			if key < fromKey {
				continue
			}
			if key > toKey {
				break
			}
			byDay[key] = &h
		}
	}
	return byDay
}

func leaveCovering(leaves []leave.LeaveRequest, day time.Time) *leave.LeaveRequest {
	key := day.Format("2006-01-02")
	for i := range leaves {
		l := leaves[i]
		if l.StartDate.Format("2006-01-02") <= key && key <= l.EndDate.Format("2006-01-02") {
			return &l
		}
	}
	return nil
}
