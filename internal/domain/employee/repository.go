package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByDeviceUserID(ctx context.Context, deviceUserID string, companyID string) (Employee, error)
	List(ctx context.Context, filter ListEmployeeFilter) ([]Employee, int64, error)
	ListByDepartment(ctx context.Context, departmentID string, companyID string) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error

	// CountActive counts active employees of a company. Callers that
	// enforce the seat limit must hold the company row lock first.
	CountActive(ctx context.Context, companyID string) (int64, error)
}
