package holiday

import "time"

// Holiday is a company-wide public holiday spanning an inclusive range
// of local calendar dates. A one-day holiday has StartDate == EndDate.
type Holiday struct {
	ID        string
	CompanyID string
	StartDate time.Time
	EndDate   time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
