package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, department Department) (Department, error)
	GetByID(ctx context.Context, id string, companyID string) (Department, error)
	List(ctx context.Context, companyID string) ([]Department, error)
	Update(ctx context.Context, department Department) error
	Delete(ctx context.Context, id string, companyID string) error

	// ListWithDevices returns the departments that have a terminal
	// configured, for the import runner.
	ListWithDevices(ctx context.Context, companyID string) ([]Department, error)

	// ListAllWithDevices is the fleet-wide variant used by the
	// background sync job.
	ListAllWithDevices(ctx context.Context) ([]Department, error)
}
