package response

import (
	"errors"
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/company"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/holiday"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/payroll"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/subscription"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDuplicateName):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Department still has employees assigned")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDuplicateDeviceUser):
		Conflict(w, "Device user id already registered in this company")
	case errors.Is(err, employee.ErrSeatLimitReached):
		Forbidden(w, "Subscription seat limit reached")
	case errors.Is(err, employee.ErrNoActiveSubscription):
		PaymentRequired(w, "No active subscription")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "From date must not be after to date", nil)
	case errors.Is(err, attendance.ErrNoDeviceConfigured):
		BadRequest(w, "No device configured for this department", nil)
	case errors.Is(err, attendance.ErrPushPayloadTooLarge):
		BadRequest(w, "Push payload exceeds the allowed batch size", nil)
	case errors.Is(err, attendance.ErrEmployeeNotMapped):
		NotFound(w, "No employee registered for this device user id")
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "No punches recorded on this day")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyDecided):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An approved leave already covers part of this range")
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, "End date must not be before start date", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateHoliday):
		Conflict(w, "A holiday already exists on this date")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryNotConfigured):
		NotFound(w, "Employee has no salary configured")
	case errors.Is(err, payroll.ErrSummaryNotFound):
		NotFound(w, "Salary summary not found")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Subscription domain errors
	case errors.Is(err, subscription.ErrPlanNotFound):
		NotFound(w, "Subscription plan not found")
	case errors.Is(err, subscription.ErrNoActiveSubscription):
		NotFound(w, "No active subscription")
	case errors.Is(err, subscription.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, subscription.ErrPaymentNotCompleted):
		BadRequest(w, "Payment has not completed", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
