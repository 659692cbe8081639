package department

import (
	"context"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
)

type departmentService struct {
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository) department.DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// CreateDepartment implements department.DepartmentService. Unset
// schedule fields take the platform defaults.
func (s *departmentService) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	d := department.Department{
		CompanyID:    req.CompanyID,
		Name:         req.Name,
		DeviceHost:   req.DeviceHost,
		DevicePort:   4370,
		WeeklyOffDay: department.DefaultWeeklyOffDay,
		ShiftStart:   department.DefaultShiftStart,
		ShiftEnd:     department.DefaultShiftEnd,
	}
	if req.DevicePort != nil {
		d.DevicePort = *req.DevicePort
	}
	if req.WeeklyOffDay != nil {
		d.WeeklyOffDay = *req.WeeklyOffDay
	}
	if req.ShiftStart != nil {
		d.ShiftStart = *req.ShiftStart
	}
	if req.ShiftEnd != nil {
		d.ShiftEnd = *req.ShiftEnd
	}

	created, err := s.departmentRepo.Create(ctx, d)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToDepartmentResponse(created), nil
}

// GetDepartment implements department.DepartmentService.
func (s *departmentService) GetDepartment(ctx context.Context, id string, companyID string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToDepartmentResponse(d), nil
}

// ListDepartments implements department.DepartmentService.
func (s *departmentService) ListDepartments(ctx context.Context, companyID string) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToDepartmentResponse(d))
	}
	return responses, nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *departmentService) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	d, err := s.departmentRepo.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.DeviceHost != nil {
		d.DeviceHost = req.DeviceHost
	}
	if req.DevicePort != nil {
		d.DevicePort = *req.DevicePort
	}
	if req.WeeklyOffDay != nil {
		d.WeeklyOffDay = *req.WeeklyOffDay
	}
	if req.ShiftStart != nil {
		d.ShiftStart = *req.ShiftStart
	}
	if req.ShiftEnd != nil {
		d.ShiftEnd = *req.ShiftEnd
	}

	if err := s.departmentRepo.Update(ctx, d); err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToDepartmentResponse(d), nil
}

// DeleteDepartment implements department.DepartmentService. A department
// with employees still assigned cannot be removed; they must be moved or
// deactivated first.
func (s *departmentService) DeleteDepartment(ctx context.Context, id string, companyID string) error {
	employees, err := s.employeeRepo.ListByDepartment(ctx, id, companyID)
	if err != nil {
		return err
	}
	if len(employees) > 0 {
		return department.ErrDepartmentNotEmpty
	}

	return s.departmentRepo.Delete(ctx, id, companyID)
}
