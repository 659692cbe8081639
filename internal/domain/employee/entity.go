package employee

import "time"

// Employee is a person enrolled on a terminal. DeviceUserID is the
// number the terminal knows them by; it is unique within a company but
// reused freely across companies.
type Employee struct {
	ID           string
	CompanyID    string
	DepartmentID string
	Name         string
	Phone        *string
	Designation  *string
	DeviceUserID string
	Active       bool
	JoinedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields for list views
	DepartmentName *string
}
