package payroll

import (
	"testing"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func baseInput() CalculationInput {
	// June 2025: 30 days, 4 Fridays off, no holidays, 10h shift.
	return CalculationInput{
		Month:         time.June,
		DaysInMonth:   30,
		WeeklyOffDays: 4,
		HolidayDays:   0,
		ShiftHours:    dec("10"),
		Salary: payroll.EmployeeSalary{
			CompanyID:    "company-1",
			EmployeeID:   "emp-1",
			BaseSalary:   dec("30000"),
			BankTransfer: dec("0"),
		},
	}
}

func TestCalculate(t *testing.T) {
	t.Run("full attendance earns the base salary", func(t *testing.T) {
		in := baseInput()
		in.WorkedMinutes = 26 * 10 * 60

		summary := Calculate(in)

		assert.Equal(t, 26, summary.WorkingDays)
		assert.True(t, summary.ExpectedHours.Equal(dec("260")), summary.ExpectedHours.String())
		assert.True(t, summary.EarnedAmount.Round(2).Equal(dec("30000")), summary.EarnedAmount.String())
		assert.True(t, summary.OvertimeHours.IsZero())
	})

	t.Run("hours beyond expectation earn time and a half", func(t *testing.T) {
		in := baseInput()
		in.WorkedMinutes = 270 * 60 // 10h over

		summary := Calculate(in)

		// 30000 + 10h * (30000/260) * 1.5
		assert.Equal(t, "31730.77", summary.EarnedAmount.StringFixed(2))
		assert.True(t, summary.OvertimeHours.Equal(dec("10")))
	})

	t.Run("partial attendance earns proportionally", func(t *testing.T) {
		in := baseInput()
		in.WorkedMinutes = 130 * 60 // half the month

		summary := Calculate(in)

		assert.Equal(t, "15000.00", summary.EarnedAmount.StringFixed(2))
	})

	t.Run("percent bonus lands only in its month", func(t *testing.T) {
		percent := dec("50")
		bonusMonth := int(time.June)

		in := baseInput()
		in.WorkedMinutes = 260 * 60
		in.Salary.BonusPercent = &percent
		in.Salary.BonusMonth = &bonusMonth

		summary := Calculate(in)
		assert.Equal(t, "15000.00", summary.BonusAmount.StringFixed(2))
		assert.Equal(t, "45000.00", summary.FinalAmount.StringFixed(2))

		in.Month = time.July
		in.DaysInMonth = 31
		in.WeeklyOffDays = 4
		summary = Calculate(in)
		assert.True(t, summary.BonusAmount.IsZero())
	})

	t.Run("fixed bonus", func(t *testing.T) {
		fixed := dec("5000")
		bonusMonth := int(time.June)

		in := baseInput()
		in.WorkedMinutes = 260 * 60
		in.Salary.BonusFixed = &fixed
		in.Salary.BonusMonth = &bonusMonth

		summary := Calculate(in)
		assert.Equal(t, "5000.00", summary.BonusAmount.StringFixed(2))
	})

	t.Run("bank transfer reduces payable cash but never below zero", func(t *testing.T) {
		in := baseInput()
		in.WorkedMinutes = 260 * 60
		in.Salary.BankTransfer = dec("20000")

		summary := Calculate(in)
		assert.Equal(t, "10000.00", summary.PayableCash.StringFixed(2))

		in.Salary.BankTransfer = dec("40000")
		summary = Calculate(in)
		assert.True(t, summary.PayableCash.IsZero())
	})

	t.Run("day counts and late time carry onto the sheet", func(t *testing.T) {
		in := baseInput()
		in.HolidayDays = 2
		in.PresentDays = 20
		in.LateMinutes = 90
		in.WorkedMinutes = 200 * 60

		summary := Calculate(in)
		assert.Equal(t, 4, summary.WeeklyOffDays)
		assert.Equal(t, 2, summary.HolidayDays)
		assert.Equal(t, 20, summary.PresentDays)
		assert.Equal(t, "1.50", summary.LateHours.StringFixed(2))
	})

	t.Run("zero expected hours clamps the rate, bonus still lands", func(t *testing.T) {
		fixed := dec("5000")
		bonusMonth := int(time.June)

		in := baseInput()
		in.WeeklyOffDays = 30
		in.WorkedMinutes = 10 * 60
		in.Salary.BonusFixed = &fixed
		in.Salary.BonusMonth = &bonusMonth

		summary := Calculate(in)
		assert.Zero(t, summary.WorkingDays)
		assert.True(t, summary.HourlyRate.IsZero())
		assert.True(t, summary.EarnedAmount.IsZero())
		assert.Equal(t, "5000.00", summary.BonusAmount.StringFixed(2))
		assert.Equal(t, "5000.00", summary.FinalAmount.StringFixed(2))
	})
}
