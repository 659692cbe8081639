package subscription

import "context"

type SubscriptionService interface {
	ListPlans(ctx context.Context) ([]PlanResponse, error)

	// Subscribe opens a bKash checkout for the chosen plan and returns
	// the URL the payer is redirected to.
	Subscribe(ctx context.Context, req SubscribeRequest) (SubscribeResponse, error)

	// ExecutePayment completes the checkout after payer approval and
	// activates the subscription.
	ExecutePayment(ctx context.Context, req ExecutePaymentRequest) (SubscriptionResponse, error)

	GetActiveSubscription(ctx context.Context, companyID string) (SubscriptionResponse, error)
}
