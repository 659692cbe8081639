package payroll

import "context"

type PayrollRepository interface {
	// UpsertSalary creates or replaces an employee's pay terms.
	UpsertSalary(ctx context.Context, salary EmployeeSalary) (EmployeeSalary, error)
	GetSalary(ctx context.Context, employeeID string, companyID string) (EmployeeSalary, error)

	// ReplaceSummary deletes any existing summary for the same
	// employee and month before inserting the new one.
	ReplaceSummary(ctx context.Context, summary SalarySummary) (SalarySummary, error)
	ListSummaries(ctx context.Context, companyID string, month string) ([]SalarySummary, error)
	GetSummary(ctx context.Context, employeeID string, month string, companyID string) (SalarySummary, error)
}
