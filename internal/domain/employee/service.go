package employee

import "context"

type EmployeeService interface {
	// CreateEmployee registers an employee, enforcing the subscription
	// seat limit under a company row lock.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string, companyID string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter ListEmployeeFilter) (ListEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee frees a seat without losing history.
	DeactivateEmployee(ctx context.Context, id string, companyID string) error
}
