package department

import (
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	CompanyID    string  `json:"-"`
	Name         string  `json:"name"`
	DeviceHost   *string `json:"device_host,omitempty"`
	DevicePort   *int    `json:"device_port,omitempty"`
	WeeklyOffDay *string `json:"weekly_off_day,omitempty"`
	ShiftStart   *string `json:"shift_start,omitempty"`
	ShiftEnd     *string `json:"shift_end,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.WeeklyOffDay != nil {
		if _, ok := validator.IsValidWeekday(*r.WeeklyOffDay); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "weekly_off_day",
				Message: "weekly_off_day must be a weekday name such as Friday",
			})
		}
	}

	if r.ShiftStart != nil {
		if _, ok := validator.IsValidClockTime(*r.ShiftStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_start",
				Message: "shift_start must be in HH:MM format",
			})
		}
	}

	if r.ShiftEnd != nil {
		if _, ok := validator.IsValidClockTime(*r.ShiftEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end",
				Message: "shift_end must be in HH:MM format",
			})
		}
	}

	if r.DevicePort != nil && (*r.DevicePort < 1 || *r.DevicePort > 65535) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_port",
			Message: "device_port must be between 1 and 65535",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDepartmentRequest struct {
	ID           string  `json:"-"`
	CompanyID    string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	DeviceHost   *string `json:"device_host,omitempty"`
	DevicePort   *int    `json:"device_port,omitempty"`
	WeeklyOffDay *string `json:"weekly_off_day,omitempty"`
	ShiftStart   *string `json:"shift_start,omitempty"`
	ShiftEnd     *string `json:"shift_end,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	proxy := CreateDepartmentRequest{
		Name:         "placeholder",
		WeeklyOffDay: r.WeeklyOffDay,
		ShiftStart:   r.ShiftStart,
		ShiftEnd:     r.ShiftEnd,
		DevicePort:   r.DevicePort,
	}
	if r.Name != nil {
		proxy.Name = *r.Name
	}
	return proxy.Validate()
}

type DepartmentResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DeviceHost   *string `json:"device_host,omitempty"`
	DevicePort   int     `json:"device_port"`
	WeeklyOffDay string  `json:"weekly_off_day"`
	ShiftStart   string  `json:"shift_start"`
	ShiftEnd     string  `json:"shift_end"`
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		DeviceHost:   d.DeviceHost,
		DevicePort:   d.DevicePort,
		WeeklyOffDay: d.WeeklyOffDay,
		ShiftStart:   d.ShiftStart,
		ShiftEnd:     d.ShiftEnd,
	}
}
