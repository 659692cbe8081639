package subscription

import "context"

type SubscriptionRepository interface {
	ListPlans(ctx context.Context) ([]Plan, error)
	GetPlan(ctx context.Context, id string) (Plan, error)

	CreateSubscription(ctx context.Context, sub CompanySubscription) (CompanySubscription, error)
	// GetActiveByCompany returns the unexpired active subscription, or
	// ErrNoActiveSubscription.
	GetActiveByCompany(ctx context.Context, companyID string) (CompanySubscription, error)
	ExpireOutdated(ctx context.Context) (int64, error)

	CreatePayment(ctx context.Context, payment Payment) (Payment, error)
	GetPaymentByBkashID(ctx context.Context, bkashPaymentID string, companyID string) (Payment, error)
	UpdatePayment(ctx context.Context, payment Payment) error
}
