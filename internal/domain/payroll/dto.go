package payroll

import (
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SetSalaryRequest struct {
	CompanyID    string  `json:"-"`
	EmployeeID   string  `json:"employee_id"`
	BaseSalary   string  `json:"base_salary"`
	BankTransfer string  `json:"bank_transfer"`
	BonusPercent *string `json:"bonus_percent,omitempty"`
	BonusFixed   *string `json:"bonus_fixed,omitempty"`
	BonusMonth   *int    `json:"bonus_month,omitempty"`
}

func (r *SetSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, err := decimal.NewFromString(r.BaseSalary); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be a decimal number",
		})
	}

	if r.BankTransfer != "" {
		if _, err := decimal.NewFromString(r.BankTransfer); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "bank_transfer",
				Message: "bank_transfer must be a decimal number",
			})
		}
	}

	if r.BonusPercent != nil {
		if _, err := decimal.NewFromString(*r.BonusPercent); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "bonus_percent",
				Message: "bonus_percent must be a decimal number",
			})
		}
	}

	if r.BonusFixed != nil {
		if _, err := decimal.NewFromString(*r.BonusFixed); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "bonus_fixed",
				Message: "bonus_fixed must be a decimal number",
			})
		}
	}

	if r.BonusMonth != nil && (*r.BonusMonth < 1 || *r.BonusMonth > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus_month",
			Message: "bonus_month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GeneratePayrollRequest struct {
	CompanyID  string  `json:"-"`
	Month      string  `json:"month"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		return ErrInvalidMonth
	}
	return nil
}

type SalarySummaryResponse struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Month         string  `json:"month"`
	WorkingDays   int     `json:"working_days"`
	PresentDays   int     `json:"present_days"`
	AbsentDays    int     `json:"absent_days"`
	LeaveDays     int     `json:"leave_days"`
	WeeklyOffDays int     `json:"weekly_off_days"`
	HolidayDays   int     `json:"holiday_days"`
	ExpectedHours string  `json:"expected_hours"`
	WorkedHours   string  `json:"worked_hours"`
	OvertimeHours string  `json:"overtime_hours"`
	LateHours     string  `json:"late_hours"`
	HourlyRate    string  `json:"hourly_rate"`
	EarnedAmount  string  `json:"earned_amount"`
	BonusAmount   string  `json:"bonus_amount"`
	FinalAmount   string  `json:"final_amount"`
	BankTransfer  string  `json:"bank_transfer"`
	PayableCash   string  `json:"payable_cash"`
}

func ToSalarySummaryResponse(s SalarySummary) SalarySummaryResponse {
	return SalarySummaryResponse{
		EmployeeID:    s.EmployeeID,
		EmployeeName:  s.EmployeeName,
		Month:         s.Month,
		WorkingDays:   s.WorkingDays,
		PresentDays:   s.PresentDays,
		AbsentDays:    s.AbsentDays,
		LeaveDays:     s.LeaveDays,
		WeeklyOffDays: s.WeeklyOffDays,
		HolidayDays:   s.HolidayDays,
		ExpectedHours: s.ExpectedHours.StringFixed(2),
		WorkedHours:   s.WorkedHours.StringFixed(2),
		OvertimeHours: s.OvertimeHours.StringFixed(2),
		LateHours:     s.LateHours.StringFixed(2),
		HourlyRate:    s.HourlyRate.StringFixed(2),
		EarnedAmount:  s.EarnedAmount.StringFixed(2),
		BonusAmount:   s.BonusAmount.StringFixed(2),
		FinalAmount:   s.FinalAmount.StringFixed(2),
		BankTransfer:  s.BankTransfer.StringFixed(2),
		PayableCash:   s.PayableCash.StringFixed(2),
	}
}
