package holiday

import (
	"context"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/holiday"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/validator"
)

type holidayService struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &holidayService{holidayRepo: holidayRepo}
}

// CreateHoliday implements holiday.HolidayService. A request without an
// end date declares a single-day holiday.
func (s *holidayService) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end := start
	if req.EndDate != "" {
		end, _ = time.Parse("2006-01-02", req.EndDate)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		CompanyID: req.CompanyID,
		StartDate: start,
		EndDate:   end,
		Name:      req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToHolidayResponse(created), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *holidayService) DeleteHoliday(ctx context.Context, id string, companyID string) error {
	return s.holidayRepo.Delete(ctx, id, companyID)
}

// ListHolidays implements holiday.HolidayService. An empty range lists
// the current year.
func (s *holidayService) ListHolidays(ctx context.Context, companyID string, fromDate, toDate string) ([]holiday.HolidayResponse, error) {
	now := time.Now()
	from := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.UTC)

	if parsed, ok := validator.IsValidDate(fromDate); ok {
		from = parsed
	}
	if parsed, ok := validator.IsValidDate(toDate); ok {
		to = parsed
	}

	holidays, err := s.holidayRepo.ListInRange(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToHolidayResponse(h))
	}
	return responses, nil
}
