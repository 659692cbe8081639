package attendance

import (
	"testing"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/holiday"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
	"github.com/easycodingbd/hazira-backend-go/internal/service/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dhaka = mustLoadDhaka()

func mustLoadDhaka() *time.Location {
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		panic(err)
	}
	return loc
}

func defaultShift() schedule.Shift {
	return schedule.Resolve(department.Department{})
}

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, dhaka)
}

func punchAt(employeeID string, direction attendance.PunchDirection, year int, month time.Month, day, hour, minute int) attendance.PunchEvent {
	return attendance.PunchEvent{
		EmployeeID: employeeID,
		CompanyID:  "company-1",
		Timestamp:  time.Date(year, month, day, hour, minute, 0, 0, dhaka).UTC(),
		Direction:  direction,
		Source:     attendance.SourceImport,
	}
}

func TestReconcilePresentDurations(t *testing.T) {
	// Monday 2025-06-02, shift 10:30-20:30
	day := localDate(2025, time.June, 2)

	tests := []struct {
		name          string
		punches       []attendance.PunchEvent
		wantWorked    int
		wantLate      int
		wantOvertime  int
		wantShortfall int
	}{
		{
			name: "early arrival clamps to shift start",
			punches: []attendance.PunchEvent{
				punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 10, 0),
				punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 2, 20, 30),
			},
			wantWorked: 600,
		},
		{
			name: "late arrival yields matching shortfall",
			punches: []attendance.PunchEvent{
				punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 11, 0),
				punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 2, 20, 30),
			},
			wantWorked:    570,
			wantLate:      30,
			wantShortfall: 30,
		},
		{
			name: "staying past shift end is overtime",
			punches: []attendance.PunchEvent{
				punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 10, 30),
				punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 2, 21, 30),
			},
			wantWorked:   660,
			wantOvertime: 60,
		},
		{
			name: "in punch without out is present with full shortfall",
			punches: []attendance.PunchEvent{
				punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 10, 30),
			},
			wantShortfall: 600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Reconcile(ReconcileInput{
				EmployeeID: "emp-1",
				From:       day,
				To:         day,
				Location:   dhaka,
				Shift:      defaultShift(),
				Punches:    tt.punches,
			})

			require.Len(t, days, 1)
			record := days[0]
			assert.Equal(t, attendance.StatusPresent, record.Status)
			assert.Equal(t, tt.wantWorked, record.WorkedMinutes)
			assert.Equal(t, tt.wantLate, record.LateMinutes)
			assert.Equal(t, tt.wantOvertime, record.OvertimeMins)
			assert.Equal(t, tt.wantShortfall, record.ShortfallMins)

			// Overtime and shortfall never coexist.
			assert.True(t, record.OvertimeMins == 0 || record.ShortfallMins == 0)
		})
	}
}

func TestReconcileKeepsEarliestInAndLatestOut(t *testing.T) {
	day := localDate(2025, time.June, 2)

	days := Reconcile(ReconcileInput{
		EmployeeID: "emp-1",
		From:       day,
		To:         day,
		Location:   dhaka,
		Shift:      defaultShift(),
		Punches: []attendance.PunchEvent{
			punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 10, 5),
			punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 2, 9, 58),
			punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 2, 19, 40),
			punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 2, 19, 55),
		},
	})

	require.Len(t, days, 1)
	record := days[0]
	require.NotNil(t, record.FirstIn)
	require.NotNil(t, record.LastOut)
	assert.Equal(t, "09:58", record.FirstIn.Format("15:04"))
	assert.Equal(t, "19:55", record.LastOut.Format("15:04"))
}

func TestReconcileClassificationPrecedence(t *testing.T) {
	shift := defaultShift()

	t.Run("holiday beats weekly off and leave", func(t *testing.T) {
		// 2025-06-06 is a Friday, the default weekly off.
		day := localDate(2025, time.June, 6)

		days := Reconcile(ReconcileInput{
			EmployeeID: "emp-1",
			From:       day,
			To:         day,
			Location:   dhaka,
			Shift:      shift,
			Leaves: []leave.LeaveRequest{{
				EmployeeID: "emp-1",
				LeaveType:  "casual",
				StartDate:  localDate(2025, time.June, 5),
				EndDate:    localDate(2025, time.June, 8),
				Status:     leave.StatusApproved,
			}},
			Holidays: []holiday.Holiday{{
				StartDate: localDate(2025, time.June, 6),
				EndDate:   localDate(2025, time.June, 6),
				Name:      "Eid al-Adha",
			}},
		})

		require.Len(t, days, 1)
		assert.Equal(t, attendance.StatusPublicHoliday, days[0].Status)
		require.NotNil(t, days[0].HolidayName)
		assert.Equal(t, "Eid al-Adha", *days[0].HolidayName)
		assert.Zero(t, days[0].WorkedMinutes)
	})

	t.Run("weekly off beats leave and punches", func(t *testing.T) {
		day := localDate(2025, time.June, 13) // Friday

		days := Reconcile(ReconcileInput{
			EmployeeID: "emp-1",
			From:       day,
			To:         day,
			Location:   dhaka,
			Shift:      shift,
			Punches: []attendance.PunchEvent{
				punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 13, 10, 30),
			},
			Leaves: []leave.LeaveRequest{{
				EmployeeID: "emp-1",
				LeaveType:  "sick",
				StartDate:  localDate(2025, time.June, 13),
				EndDate:    localDate(2025, time.June, 13),
				Status:     leave.StatusApproved,
			}},
		})

		require.Len(t, days, 1)
		assert.Equal(t, attendance.StatusWeeklyOff, days[0].Status)
	})

	t.Run("leave beats present and credits the full shift", func(t *testing.T) {
		day := localDate(2025, time.June, 10) // Tuesday

		days := Reconcile(ReconcileInput{
			EmployeeID: "emp-1",
			From:       day,
			To:         day,
			Location:   dhaka,
			Shift:      shift,
			Punches: []attendance.PunchEvent{
				punchAt("emp-1", attendance.DirectionIn, 2025, time.June, 10, 11, 0),
				punchAt("emp-1", attendance.DirectionOut, 2025, time.June, 10, 15, 0),
			},
			Leaves: []leave.LeaveRequest{{
				EmployeeID: "emp-1",
				LeaveType:  "casual",
				StartDate:  localDate(2025, time.June, 10),
				EndDate:    localDate(2025, time.June, 10),
				Status:     leave.StatusApproved,
			}},
		})

		require.Len(t, days, 1)
		record := days[0]
		assert.Equal(t, attendance.StatusLeave, record.Status)
		assert.Equal(t, 600, record.WorkedMinutes)
		assert.Equal(t, 30, record.LateMinutes)
		assert.Zero(t, record.OvertimeMins)
		assert.Zero(t, record.ShortfallMins)
	})
}

func TestReconcileMonthPartition(t *testing.T) {
	from := localDate(2025, time.June, 1)
	to := localDate(2025, time.June, 30)

	var punches []attendance.PunchEvent
	// Present on the 2nd through the 5th.
	for day := 2; day <= 5; day++ {
		punches = append(punches,
			punchAt("emp-1", attendance.DirectionIn, 2025, time.June, day, 10, 30),
			punchAt("emp-1", attendance.DirectionOut, 2025, time.June, day, 20, 30),
		)
	}

	days := Reconcile(ReconcileInput{
		EmployeeID: "emp-1",
		From:       from,
		To:         to,
		Location:   dhaka,
		Shift:      defaultShift(),
		Punches:    punches,
		Leaves: []leave.LeaveRequest{{
			EmployeeID: "emp-1",
			LeaveType:  "casual",
			StartDate:  localDate(2025, time.June, 10),
			EndDate:    localDate(2025, time.June, 11),
			Status:     leave.StatusApproved,
		}},
		Holidays: []holiday.Holiday{{
			StartDate: localDate(2025, time.June, 7),
			EndDate:   localDate(2025, time.June, 7),
			Name:      "Eid al-Adha",
		}},
	})

	summary := Aggregate("emp-1", "Rahim", from, to, days)

	// June 2025 has four Fridays: 6, 13, 20, 27.
	assert.Equal(t, 4, summary.PresentDays)
	assert.Equal(t, 2, summary.LeaveDays)
	assert.Equal(t, 4, summary.WeeklyOffDays)
	assert.Equal(t, 1, summary.HolidayDays)
	assert.Equal(t, 19, summary.AbsentDays)

	total := summary.PresentDays + summary.AbsentDays + summary.LeaveDays +
		summary.WeeklyOffDays + summary.HolidayDays
	assert.Equal(t, 30, total)

	// 4 full present days plus 2 credited leave days.
	assert.Equal(t, 6*600, summary.WorkedMinutes)
}

func TestReconcileHolidayIntervals(t *testing.T) {
	from := localDate(2025, time.June, 1)
	to := localDate(2025, time.June, 30)

	days := Reconcile(ReconcileInput{
		EmployeeID: "emp-1",
		From:       from,
		To:         to,
		Location:   dhaka,
		Shift:      defaultShift(),
		Holidays: []holiday.Holiday{
			// Spans the boundary into the range: only June 1-2 count.
			{
				StartDate: localDate(2025, time.May, 30),
				EndDate:   localDate(2025, time.June, 2),
				Name:      "Eid al-Adha",
			},
			// Spans out of the range: only June 29-30 count.
			{
				StartDate: localDate(2025, time.June, 29),
				EndDate:   localDate(2025, time.July, 2),
				Name:      "Plant Shutdown",
			},
		},
	})

	require.Len(t, days, 30)

	byDate := make(map[string]attendance.DayRecord, len(days))
	for _, d := range days {
		byDate[d.Date.Format("2006-01-02")] = d
	}

	for _, date := range []string{"2025-06-01", "2025-06-02", "2025-06-29", "2025-06-30"} {
		record := byDate[date]
		assert.Equal(t, attendance.StatusPublicHoliday, record.Status, date)
		require.NotNil(t, record.HolidayName, date)
	}
	assert.Equal(t, "Eid al-Adha", *byDate["2025-06-02"].HolidayName)
	assert.Equal(t, "Plant Shutdown", *byDate["2025-06-29"].HolidayName)

	assert.Equal(t, attendance.StatusAbsent, byDate["2025-06-03"].Status)

	summary := Aggregate("emp-1", "Rahim", from, to, days)
	assert.Equal(t, 4, summary.HolidayDays)
}
