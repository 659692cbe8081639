package subscription

import (
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
)

type PlanResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EmployeeLimit int    `json:"employee_limit"`
	Price         string `json:"price"`
	DurationDays  int    `json:"duration_days"`
}

func ToPlanResponse(p Plan) PlanResponse {
	return PlanResponse{
		ID:            p.ID,
		Name:          p.Name,
		EmployeeLimit: p.EmployeeLimit,
		Price:         p.Price.StringFixed(2),
		DurationDays:  p.DurationDays,
	}
}

type SubscribeRequest struct {
	CompanyID   string `json:"-"`
	PlanID      string `json:"plan_id"`
	CallbackURL string `json:"callback_url"`
}

func (r *SubscribeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PlanID) {
		errs = append(errs, validator.ValidationError{
			Field:   "plan_id",
			Message: "plan_id is required",
		})
	}

	if validator.IsEmpty(r.CallbackURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "callback_url",
			Message: "callback_url is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubscribeResponse struct {
	PaymentID   string `json:"payment_id"`
	CheckoutURL string `json:"checkout_url"`
}

type ExecutePaymentRequest struct {
	CompanyID string `json:"-"`
	PaymentID string `json:"payment_id"`
}

func (r *ExecutePaymentRequest) Validate() error {
	if validator.IsEmpty(r.PaymentID) {
		return validator.ValidationErrors{{
			Field:   "payment_id",
			Message: "payment_id is required",
		}}
	}
	return nil
}

type SubscriptionResponse struct {
	ID            string `json:"id"`
	PlanID        string `json:"plan_id"`
	PlanName      string `json:"plan_name"`
	EmployeeLimit int    `json:"employee_limit"`
	StartsAt      string `json:"starts_at"`
	ExpiresAt     string `json:"expires_at"`
	Status        string `json:"status"`
}

func ToSubscriptionResponse(s CompanySubscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:            s.ID,
		PlanID:        s.PlanID,
		PlanName:      s.PlanName,
		EmployeeLimit: s.EmployeeLimit,
		StartsAt:      s.StartsAt.Format("2006-01-02"),
		ExpiresAt:     s.ExpiresAt.Format("2006-01-02"),
		Status:        string(s.Status),
	}
}
