package holiday

import "errors"

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrDuplicateHoliday = errors.New("a holiday already exists on this date")
)
