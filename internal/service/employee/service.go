package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/company"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/subscription"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/database"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
	"github.com/easycodingbd/hazira-backend-go/internal/repository/postgresql"
)

type employeeService struct {
	db               *database.DB
	employeeRepo     employee.EmployeeRepository
	companyRepo      company.CompanyRepository
	subscriptionRepo subscription.SubscriptionRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	subscriptionRepo subscription.SubscriptionRepository,
) employee.EmployeeService {
	return &employeeService{
		db:               db,
		employeeRepo:     employeeRepo,
		companyRepo:      companyRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// CreateEmployee implements employee.EmployeeService. The company row
// is locked for the duration of the transaction so two concurrent
// registrations cannot both pass the seat check.
func (s *employeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Phone:        req.Phone,
		Designation:  req.Designation,
		DeviceUserID: req.DeviceUserID,
		Active:       true,
	}
	if req.JoinedAt != nil {
		if joined, ok := validator.ParseFlexibleDate(*req.JoinedAt); ok {
			newEmployee.JoinedAt = &joined
		}
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.companyRepo.LockByID(txCtx, req.CompanyID); err != nil {
			return err
		}

		sub, err := s.subscriptionRepo.GetActiveByCompany(txCtx, req.CompanyID)
		if err != nil {
			if errors.Is(err, subscription.ErrNoActiveSubscription) {
				return employee.ErrNoActiveSubscription
			}
			return err
		}

		active, err := s.employeeRepo.CountActive(txCtx, req.CompanyID)
		if err != nil {
			return err
		}
		if active >= int64(sub.EmployeeLimit) {
			return employee.ErrSeatLimitReached
		}

		created, err := s.employeeRepo.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}
		newEmployee = created
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee registered", "employee_id", newEmployee.ID, "company_id", req.CompanyID)
	return employee.ToEmployeeResponse(newEmployee), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeService) GetEmployee(ctx context.Context, id string, companyID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeService) ListEmployees(ctx context.Context, filter employee.ListEmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToEmployeeResponse(e))
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	return employee.ListEmployeeResponse{
		Employees: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService. Reactivating an
// employee consumes a seat, so it goes through the same locked check as
// registration.
func (s *employeeService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	reactivating := req.Active != nil && *req.Active && !emp.Active

	if req.DepartmentID != nil {
		emp.DepartmentID = *req.DepartmentID
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Designation != nil {
		emp.Designation = req.Designation
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if !reactivating {
		if err := s.employeeRepo.Update(ctx, emp); err != nil {
			return employee.EmployeeResponse{}, err
		}
		return employee.ToEmployeeResponse(emp), nil
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.companyRepo.LockByID(txCtx, req.CompanyID); err != nil {
			return err
		}

		sub, err := s.subscriptionRepo.GetActiveByCompany(txCtx, req.CompanyID)
		if err != nil {
			if errors.Is(err, subscription.ErrNoActiveSubscription) {
				return employee.ErrNoActiveSubscription
			}
			return err
		}

		active, err := s.employeeRepo.CountActive(txCtx, req.CompanyID)
		if err != nil {
			return err
		}
		if active >= int64(sub.EmployeeLimit) {
			return employee.ErrSeatLimitReached
		}

		return s.employeeRepo.Update(txCtx, emp)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *employeeService) DeactivateEmployee(ctx context.Context, id string, companyID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	emp.Active = false
	return s.employeeRepo.Update(ctx, emp)
}
