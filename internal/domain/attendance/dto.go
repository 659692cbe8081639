package attendance

import (
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
)

// PushEventRequest is the webhook payload a terminal posts in real time.
// Timestamps arrive without direction; the engine infers In/Out from the
// local wall-clock hour.
type PushEventRequest struct {
	DeviceUserID string `json:"device_user_id"`
	Timestamp    string `json:"timestamp"`
}

type PushBatchRequest struct {
	CompanyID string             `json:"-"`
	Events    []PushEventRequest `json:"events"`
}

const maxPushBatchSize = 500

func (r *PushBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Events) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "events",
			Message: "events must not be empty",
		})
	}

	if len(r.Events) > maxPushBatchSize {
		return ErrPushPayloadTooLarge
	}

	for i, event := range r.Events {
		if validator.IsEmpty(event.DeviceUserID) {
			errs = append(errs, validator.ValidationError{
				Field:   "events.device_user_id",
				Message: "device_user_id is required",
			})
		}
		if _, err := validator.ParseFlexibleTimestamp(event.Timestamp); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "events.timestamp",
				Message: "timestamp is not a recognized date-time format",
			})
		}
		// One message per field is enough for a malformed batch.
		if len(errs) > 0 && i > 0 {
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SyncRequest triggers an on-demand pull from every terminal of a
// company, or a single department when DepartmentID is set.
type SyncRequest struct {
	CompanyID    string  `json:"-"`
	DepartmentID *string `json:"department_id,omitempty"`
}

// SummaryRequest asks for reconciled attendance over an inclusive local
// date range. Dates are accepted in any of the common human formats.
type SummaryRequest struct {
	CompanyID  string
	EmployeeID string
	From       string
	To         string
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	var from, to time.Time
	var ok bool

	if validator.IsEmpty(r.From) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from is required",
		})
	} else if from, ok = validator.ParseFlexibleDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from is not a recognized date format",
		})
	}

	if validator.IsEmpty(r.To) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to is required",
		})
	} else if to, ok = validator.ParseFlexibleDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to is not a recognized date format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if from.After(to) {
		return ErrInvalidDateRange
	}

	return nil
}

// ManualPunchRequest lets an admin record a punch the terminal missed.
type ManualPunchRequest struct {
	CompanyID  string `json:"-"`
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
	Direction  string `json:"direction"`
}

func (r *ManualPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, err := validator.ParseFlexibleTimestamp(r.Timestamp); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is not a recognized date-time format",
		})
	}

	if r.Direction != string(DirectionIn) && r.Direction != string(DirectionOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "direction",
			Message: "direction must be either in or out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayRequest addresses one employee's punches on a single local day.
type DayRequest struct {
	CompanyID  string
	EmployeeID string
	Date       string
}

func (r *DayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is not a recognized date format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CorrectDayRequest rewrites an employee's punches on one day with an
// admin-supplied In/Out pair. Times are local clock values; a nil side
// is left empty.
type CorrectDayRequest struct {
	CompanyID  string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	FirstIn    *string `json:"first_in,omitempty"`
	LastOut    *string `json:"last_out,omitempty"`
}

func (r *CorrectDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.ParseFlexibleDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is not a recognized date format",
		})
	}

	if r.FirstIn == nil && r.LastOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "first_in",
			Message: "at least one of first_in or last_out is required",
		})
	}

	var in, out time.Time
	var inOK, outOK bool
	if r.FirstIn != nil {
		if in, inOK = validator.IsValidClockTime(*r.FirstIn); !inOK {
			errs = append(errs, validator.ValidationError{
				Field:   "first_in",
				Message: "first_in must be in HH:MM format",
			})
		}
	}
	if r.LastOut != nil {
		if out, outOK = validator.IsValidClockTime(*r.LastOut); !outOK {
			errs = append(errs, validator.ValidationError{
				Field:   "last_out",
				Message: "last_out must be in HH:MM format",
			})
		}
	}
	if inOK && outOK && out.Before(in) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_out",
			Message: "last_out must not be before first_in",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SyncResponse reports per-device outcomes of an import run.
type SyncResponse struct {
	Results []ImportResult `json:"results"`
}

// DayRecordResponse is the wire form of one reconciled day.
type DayRecordResponse struct {
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	FirstIn          *string `json:"first_in,omitempty"`
	LastOut          *string `json:"last_out,omitempty"`
	WorkedMinutes    int     `json:"worked_minutes"`
	LateMinutes      int     `json:"late_minutes"`
	OvertimeMinutes  int     `json:"overtime_minutes"`
	ShortfallMinutes int     `json:"shortfall_minutes"`
	LeaveType        *string `json:"leave_type,omitempty"`
	HolidayName      *string `json:"holiday_name,omitempty"`
}

// SummaryResponse is the wire form of a reconciled range.
type SummaryResponse struct {
	EmployeeID       string              `json:"employee_id"`
	EmployeeName     string              `json:"employee_name"`
	From             string              `json:"from"`
	To               string              `json:"to"`
	PresentDays      int                 `json:"present_days"`
	AbsentDays       int                 `json:"absent_days"`
	LeaveDays        int                 `json:"leave_days"`
	WeeklyOffDays    int                 `json:"weekly_off_days"`
	HolidayDays      int                 `json:"holiday_days"`
	WorkedMinutes    int                 `json:"worked_minutes"`
	LateMinutes      int                 `json:"late_minutes"`
	OvertimeMinutes  int                 `json:"overtime_minutes"`
	ShortfallMinutes int                 `json:"shortfall_minutes"`
	Days             []DayRecordResponse `json:"days"`
}

// ToDayRecordResponse converts one reconciled day to its wire form,
// rendering instants in the given location.
func ToDayRecordResponse(d DayRecord, loc *time.Location) DayRecordResponse {
	return DayRecordResponse{
		Date:             d.Date.Format("2006-01-02"),
		Status:           string(d.Status),
		FirstIn:          formatClock(d.FirstIn, loc),
		LastOut:          formatClock(d.LastOut, loc),
		WorkedMinutes:    d.WorkedMinutes,
		LateMinutes:      d.LateMinutes,
		OvertimeMinutes:  d.OvertimeMins,
		ShortfallMinutes: d.ShortfallMins,
		LeaveType:        d.LeaveType,
		HolidayName:      d.HolidayName,
	}
}

// ToSummaryResponse converts a summary to its wire form.
func ToSummaryResponse(s Summary, loc *time.Location) SummaryResponse {
	days := make([]DayRecordResponse, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, ToDayRecordResponse(d, loc))
	}

	return SummaryResponse{
		EmployeeID:       s.EmployeeID,
		EmployeeName:     s.EmployeeName,
		From:             s.From.Format("2006-01-02"),
		To:               s.To.Format("2006-01-02"),
		PresentDays:      s.PresentDays,
		AbsentDays:       s.AbsentDays,
		LeaveDays:        s.LeaveDays,
		WeeklyOffDays:    s.WeeklyOffDays,
		HolidayDays:      s.HolidayDays,
		WorkedMinutes:    s.WorkedMinutes,
		LateMinutes:      s.LateMinutes,
		OvertimeMinutes:  s.OvertimeMinutes,
		ShortfallMinutes: s.ShortfallMinutes,
		Days:             days,
	}
}

func formatClock(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("15:04:05")
	return &formatted
}
