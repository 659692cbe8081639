package subscription

import "errors"

var (
	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrNoActiveSubscription = errors.New("company has no active subscription")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentNotCompleted  = errors.New("payment has not completed")
)
