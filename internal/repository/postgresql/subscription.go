package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/subscription"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type subscriptionRepositoryImpl struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) subscription.SubscriptionRepository {
	return &subscriptionRepositoryImpl{db: db}
}

// ListPlans implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) ListPlans(ctx context.Context) ([]subscription.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, employee_limit, price, duration_days, created_at
		FROM subscription_plans
		ORDER BY price
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []subscription.Plan
	for rows.Next() {
		var p subscription.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.EmployeeLimit, &p.Price, &p.DurationDays, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}
	return plans, nil
}

// GetPlan implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) GetPlan(ctx context.Context, id string) (subscription.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, employee_limit, price, duration_days, created_at
		FROM subscription_plans
		WHERE id = $1
	`

	var p subscription.Plan
	err := q.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.EmployeeLimit, &p.Price, &p.DurationDays, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.Plan{}, subscription.ErrPlanNotFound
		}
		return subscription.Plan{}, fmt.Errorf("failed to get plan: %w", err)
	}
	return p, nil
}

// CreateSubscription implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) CreateSubscription(ctx context.Context, s subscription.CompanySubscription) (subscription.CompanySubscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_subscriptions (company_id, plan_id, starts_at, expires_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.CompanyID, s.PlanID, s.StartsAt, s.ExpiresAt, string(s.Status)).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return subscription.CompanySubscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}
	return s, nil
}

// GetActiveByCompany implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) GetActiveByCompany(ctx context.Context, companyID string) (subscription.CompanySubscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cs.id, cs.company_id, cs.plan_id, cs.starts_at, cs.expires_at, cs.status,
		       cs.created_at, cs.updated_at, p.name, p.employee_limit
		FROM company_subscriptions cs
		JOIN subscription_plans p ON p.id = cs.plan_id
		WHERE cs.company_id = $1
		  AND cs.status = 'active'
		  AND cs.expires_at > NOW()
		ORDER BY cs.expires_at DESC
		LIMIT 1
	`

	var s subscription.CompanySubscription
	var status string
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.PlanID, &s.StartsAt, &s.ExpiresAt, &status,
		&s.CreatedAt, &s.UpdatedAt, &s.PlanName, &s.EmployeeLimit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.CompanySubscription{}, subscription.ErrNoActiveSubscription
		}
		return subscription.CompanySubscription{}, fmt.Errorf("failed to get active subscription: %w", err)
	}
	s.Status = subscription.SubscriptionStatus(status)
	return s, nil
}

// ExpireOutdated implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) ExpireOutdated(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE company_subscriptions
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND expires_at <= NOW()
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to expire subscriptions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CreatePayment implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) CreatePayment(ctx context.Context, p subscription.Payment) (subscription.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bkash_payments (company_id, plan_id, bkash_payment_id, trx_id, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.CompanyID, p.PlanID, p.BkashPayIDRef, p.TrxID, p.Amount, string(p.Status)).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return subscription.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return p, nil
}

// GetPaymentByBkashID implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) GetPaymentByBkashID(ctx context.Context, bkashPaymentID string, companyID string) (subscription.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, plan_id, bkash_payment_id, trx_id, amount, status, created_at, updated_at
		FROM bkash_payments
		WHERE bkash_payment_id = $1 AND company_id = $2
	`

	var p subscription.Payment
	var status string
	err := q.QueryRow(ctx, query, bkashPaymentID, companyID).Scan(
		&p.ID, &p.CompanyID, &p.PlanID, &p.BkashPayIDRef, &p.TrxID, &p.Amount, &status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.Payment{}, subscription.ErrPaymentNotFound
		}
		return subscription.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	p.Status = subscription.PaymentStatus(status)
	return p, nil
}

// UpdatePayment implements subscription.SubscriptionRepository.
func (r *subscriptionRepositoryImpl) UpdatePayment(ctx context.Context, p subscription.Payment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bkash_payments
		SET trx_id = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND company_id = $4
	`

	tag, err := q.Exec(ctx, query, p.TrxID, string(p.Status), p.ID, p.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return subscription.ErrPaymentNotFound
	}
	return nil
}
