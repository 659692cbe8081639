package payroll

import (
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	sixty        = decimal.NewFromInt(60)
	hundred      = decimal.NewFromInt(100)
	overtimeRate = decimal.NewFromFloat(1.5)
)

// CalculationInput is the month's reconciled attendance plus the
// employee's pay terms. WorkedMinutes already includes credited leave
// days, so the calculator never needs to know about leave directly.
type CalculationInput struct {
	Month         time.Month
	DaysInMonth   int
	WeeklyOffDays int
	HolidayDays   int
	PresentDays   int
	AbsentDays    int
	LeaveDays     int
	ShiftHours    decimal.Decimal
	WorkedMinutes int
	LateMinutes   int
	Salary        payroll.EmployeeSalary
}

// Calculate derives one month's pay sheet. Expected hours come from the
// working-day count; hours beyond expectation earn time-and-a-half. A
// month with no working days clamps the hourly rate to zero rather than
// failing, so the sheet still lands with bonus applied.
func Calculate(in CalculationInput) payroll.SalarySummary {
	workingDays := in.DaysInMonth - in.WeeklyOffDays - in.HolidayDays
	expectedHours := decimal.NewFromInt(int64(workingDays)).Mul(in.ShiftHours)

	hourlyRate := decimal.Zero
	if expectedHours.IsPositive() {
		hourlyRate = in.Salary.BaseSalary.Div(expectedHours)
	}
	workedHours := decimal.NewFromInt(int64(in.WorkedMinutes)).Div(sixty)

	regularHours := workedHours
	overtimeHours := decimal.Zero
	if workedHours.GreaterThan(expectedHours) {
		regularHours = expectedHours
		overtimeHours = workedHours.Sub(expectedHours)
	}

	earned := regularHours.Mul(hourlyRate).
		Add(overtimeHours.Mul(hourlyRate).Mul(overtimeRate))

	bonus := bonusFor(in.Salary, in.Month)
	final := earned.Add(bonus)

	payableCash := final.Sub(in.Salary.BankTransfer)
	if payableCash.IsNegative() {
		payableCash = decimal.Zero
	}

	return payroll.SalarySummary{
		CompanyID:     in.Salary.CompanyID,
		EmployeeID:    in.Salary.EmployeeID,
		WorkingDays:   workingDays,
		PresentDays:   in.PresentDays,
		AbsentDays:    in.AbsentDays,
		LeaveDays:     in.LeaveDays,
		WeeklyOffDays: in.WeeklyOffDays,
		HolidayDays:   in.HolidayDays,
		ExpectedHours: expectedHours,
		WorkedHours:   workedHours,
		OvertimeHours: overtimeHours,
		LateHours:     decimal.NewFromInt(int64(in.LateMinutes)).Div(sixty),
		HourlyRate:    hourlyRate,
		EarnedAmount:  earned,
		BonusAmount:   bonus,
		FinalAmount:   final,
		BankTransfer:  in.Salary.BankTransfer,
		PayableCash:   payableCash,
	}
}

// bonusFor returns the bonus landing in the given month. A percent
// bonus is applied to base salary; a fixed bonus is taken as-is. Both
// require the salary's bonus month to match.
func bonusFor(salary payroll.EmployeeSalary, month time.Month) decimal.Decimal {
	if salary.BonusMonth == nil || *salary.BonusMonth != int(month) {
		return decimal.Zero
	}
	if salary.BonusPercent != nil {
		return salary.BaseSalary.Mul(*salary.BonusPercent).Div(hundred)
	}
	if salary.BonusFixed != nil {
		return *salary.BonusFixed
	}
	return decimal.Zero
}
