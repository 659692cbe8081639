package payroll

import "errors"

var (
	ErrSalaryNotConfigured = errors.New("employee has no salary configured")
	ErrSummaryNotFound     = errors.New("salary summary not found")
	ErrInvalidMonth        = errors.New("month must be in YYYY-MM format")
)
