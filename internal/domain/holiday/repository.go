package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error

	// ListInRange returns the holidays of a company whose inclusive
	// interval overlaps [from, to], ordered by start date.
	ListInRange(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)
}
