package holiday

import "context"

type HolidayService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string, companyID string) error
	ListHolidays(ctx context.Context, companyID string, fromDate, toDate string) ([]HolidayResponse, error)
}
