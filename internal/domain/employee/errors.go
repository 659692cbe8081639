package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrDuplicateDeviceUser  = errors.New("this device user id is already registered in the company")
	ErrSeatLimitReached     = errors.New("active employee count has reached the subscription seat limit")
	ErrNoActiveSubscription = errors.New("company has no active subscription")
)
