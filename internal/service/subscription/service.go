package subscription

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/subscription"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/bkash"
	"github.com/google/uuid"
)

type subscriptionService struct {
	subscriptionRepo subscription.SubscriptionRepository
	bkashClient      *bkash.Client
}

func NewSubscriptionService(subscriptionRepo subscription.SubscriptionRepository, bkashClient *bkash.Client) subscription.SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		bkashClient:      bkashClient,
	}
}

// ListPlans implements subscription.SubscriptionService.
func (s *subscriptionService) ListPlans(ctx context.Context) ([]subscription.PlanResponse, error) {
	plans, err := s.subscriptionRepo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]subscription.PlanResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, subscription.ToPlanResponse(p))
	}
	return responses, nil
}

// Subscribe implements subscription.SubscriptionService.
func (s *subscriptionService) Subscribe(ctx context.Context, req subscription.SubscribeRequest) (subscription.SubscribeResponse, error) {
	if err := req.Validate(); err != nil {
		return subscription.SubscribeResponse{}, err
	}

	plan, err := s.subscriptionRepo.GetPlan(ctx, req.PlanID)
	if err != nil {
		return subscription.SubscribeResponse{}, err
	}

	// bKash rejects duplicate merchant invoice numbers.
	invoice := "sub-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
	result, err := s.bkashClient.CreatePayment(ctx, plan.Price.StringFixed(2), invoice, req.CallbackURL)
	if err != nil {
		return subscription.SubscribeResponse{}, err
	}

	_, err = s.subscriptionRepo.CreatePayment(ctx, subscription.Payment{
		CompanyID:     req.CompanyID,
		PlanID:        plan.ID,
		BkashPayIDRef: result.PaymentID,
		Amount:        plan.Price,
		Status:        subscription.PaymentInitiated,
	})
	if err != nil {
		return subscription.SubscribeResponse{}, err
	}

	return subscription.SubscribeResponse{
		PaymentID:   result.PaymentID,
		CheckoutURL: result.BkashURL,
	}, nil
}

// ExecutePayment implements subscription.SubscriptionService.
func (s *subscriptionService) ExecutePayment(ctx context.Context, req subscription.ExecutePaymentRequest) (subscription.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	payment, err := s.subscriptionRepo.GetPaymentByBkashID(ctx, req.PaymentID, req.CompanyID)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	result, err := s.bkashClient.ExecutePayment(ctx, req.PaymentID)
	if err != nil {
		payment.Status = subscription.PaymentFailed
		_ = s.subscriptionRepo.UpdatePayment(ctx, payment)
		return subscription.SubscriptionResponse{}, err
	}

	if !strings.EqualFold(result.Status, "Completed") {
		payment.Status = subscription.PaymentFailed
		_ = s.subscriptionRepo.UpdatePayment(ctx, payment)
		return subscription.SubscriptionResponse{}, subscription.ErrPaymentNotCompleted
	}

	payment.Status = subscription.PaymentCompleted
	payment.TrxID = &result.TrxID
	if err := s.subscriptionRepo.UpdatePayment(ctx, payment); err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	plan, err := s.subscriptionRepo.GetPlan(ctx, payment.PlanID)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	now := time.Now()
	sub, err := s.subscriptionRepo.CreateSubscription(ctx, subscription.CompanySubscription{
		CompanyID: req.CompanyID,
		PlanID:    plan.ID,
		StartsAt:  now,
		ExpiresAt: now.AddDate(0, 0, plan.DurationDays),
		Status:    subscription.StatusActive,
	})
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}

	sub.PlanName = plan.Name
	sub.EmployeeLimit = plan.EmployeeLimit

	slog.Info("Subscription activated", "company_id", req.CompanyID, "plan", plan.Name, "trx_id", result.TrxID)
	return subscription.ToSubscriptionResponse(sub), nil
}

// GetActiveSubscription implements subscription.SubscriptionService.
func (s *subscriptionService) GetActiveSubscription(ctx context.Context, companyID string) (subscription.SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return subscription.SubscriptionResponse{}, err
	}
	return subscription.ToSubscriptionResponse(sub), nil
}
