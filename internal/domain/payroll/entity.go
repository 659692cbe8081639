package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeSalary holds the pay terms of one employee. Bonus fields are
// optional; when BonusMonth is set, the bonus lands only in that month.
type EmployeeSalary struct {
	ID           string
	CompanyID    string
	EmployeeID   string
	BaseSalary   decimal.Decimal
	BankTransfer decimal.Decimal
	BonusPercent *decimal.Decimal
	BonusFixed   *decimal.Decimal
	BonusMonth   *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SalarySummary is the computed pay sheet of one employee for one
// month. Regeneration replaces the whole row.
type SalarySummary struct {
	ID               string
	CompanyID        string
	EmployeeID       string
	Month            string // YYYY-MM
	WorkingDays      int
	PresentDays      int
	AbsentDays       int
	LeaveDays        int
	WeeklyOffDays    int
	HolidayDays      int
	ExpectedHours    decimal.Decimal
	WorkedHours      decimal.Decimal
	OvertimeHours    decimal.Decimal
	LateHours        decimal.Decimal
	HourlyRate       decimal.Decimal
	EarnedAmount     decimal.Decimal
	BonusAmount      decimal.Decimal
	FinalAmount      decimal.Decimal
	BankTransfer     decimal.Decimal
	PayableCash      decimal.Decimal
	GeneratedAt      time.Time

	// Joined fields for list views
	EmployeeName *string
}
