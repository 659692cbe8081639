package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a purchasable subscription tier. EmployeeLimit caps active
// employees per company.
type Plan struct {
	ID            string
	Name          string
	EmployeeLimit int
	Price         decimal.Decimal
	DurationDays  int
	CreatedAt     time.Time
}

type SubscriptionStatus string

const (
	StatusActive  SubscriptionStatus = "active"
	StatusExpired SubscriptionStatus = "expired"
	StatusPending SubscriptionStatus = "pending"
)

// CompanySubscription binds a company to a plan for a period.
type CompanySubscription struct {
	ID        string
	CompanyID string
	PlanID    string
	StartsAt  time.Time
	ExpiresAt time.Time
	Status    SubscriptionStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined from the plan
	PlanName      string
	EmployeeLimit int
}

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "initiated"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records one bKash checkout attempt for a plan purchase.
type Payment struct {
	ID            string
	CompanyID     string
	PlanID        string
	BkashPayIDRef string
	TrxID         *string
	Amount        decimal.Decimal
	Status        PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
