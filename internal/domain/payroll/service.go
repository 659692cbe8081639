package payroll

import "context"

type PayrollService interface {
	SetSalary(ctx context.Context, req SetSalaryRequest) error

	// GeneratePayroll reconciles attendance for the month and computes
	// a pay sheet per employee, replacing prior runs for that month.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) ([]SalarySummaryResponse, error)

	ListPayroll(ctx context.Context, companyID string, month string) ([]SalarySummaryResponse, error)
}
