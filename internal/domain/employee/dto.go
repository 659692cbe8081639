package employee

import (
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	CompanyID    string  `json:"-"`
	DepartmentID string  `json:"department_id"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	DeviceUserID string  `json:"device_user_id"`
	JoinedAt     *string `json:"joined_at,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if validator.IsEmpty(r.DeviceUserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_user_id",
			Message: "device_user_id is required",
		})
	} else if !validator.IsNumeric(r.DeviceUserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_user_id",
			Message: "device_user_id must be numeric",
		})
	}

	if r.JoinedAt != nil {
		if _, ok := validator.ParseFlexibleDate(*r.JoinedAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joined_at",
				Message: "joined_at is not a recognized date format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	CompanyID    string  `json:"-"`
	DepartmentID *string `json:"department_id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

type ListEmployeeFilter struct {
	CompanyID    string
	DepartmentID *string
	ActiveOnly   bool
	Page         int
	PageSize     int
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	Name           string  `json:"name"`
	Phone          *string `json:"phone,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	DeviceUserID   string  `json:"device_user_id"`
	Active         bool    `json:"active"`
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Name:           e.Name,
		Phone:          e.Phone,
		Designation:    e.Designation,
		DeviceUserID:   e.DeviceUserID,
		Active:         e.Active,
	}
}
