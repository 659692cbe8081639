package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, company Company) error

	// LockByID takes a row lock on the company inside the current
	// transaction. Used to serialize seat-limit checks.
	LockByID(ctx context.Context, id string) (Company, error)
}
