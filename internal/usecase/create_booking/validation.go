package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// validateRequest валидирует входные данные и разрешает интервал бронирования
func validateRequest(req *Request, allowFullDayWrap bool) (domain.Interval, error) {
	if req.UserID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Guests < 0 || req.Guests > domain.MaxGuests {
		return domain.Interval{}, fmt.Errorf("%w: guests must be in 0..%d", ErrInvalidInput, domain.MaxGuests)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return domain.Interval{}, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.DiscountCode != nil && len(strings.TrimSpace(*req.DiscountCode)) > domain.MaxDiscountCodeLength {
		return domain.Interval{}, fmt.Errorf("%w: discount code exceeds %d characters", ErrInvalidInput, domain.MaxDiscountCodeLength)
	}

	// Валидируем формат времени
	if err := types.TimeString(req.StartTime).Validate(); err != nil {
		return domain.Interval{}, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := types.TimeString(req.EndTime).Validate(); err != nil {
		return domain.Interval{}, fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	interval, err := domain.ResolveSlot(req.EventDate, req.EventEndDate, req.StartTime, req.EndTime)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sameDay := req.EventEndDate == nil || *req.EventEndDate == "" || *req.EventEndDate == req.EventDate
	if !allowFullDayWrap && sameDay && interval.IsFullDayWrap() {
		return domain.Interval{}, ErrFullDayWrapNotAllowed
	}

	return interval, nil
}

// validateNotInPast проверяет, что событие не начинается в прошлом
// Даты плавающие (без часового пояса), поэтому сравниваем с текущими датой и временем по часам сервера
func validateNotInPast(interval domain.Interval, now time.Time) error {
	wallNow := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, time.UTC)
	if interval.Start.Before(wallNow) {
		return fmt.Errorf("%w: event starts in the past", ErrInvalidDate)
	}
	return nil
}

// parseEndDate возвращает дату окончания, если она отличается от даты начала
func parseEndDate(req *Request) (*time.Time, error) {
	if req.EventEndDate == nil || *req.EventEndDate == "" || *req.EventEndDate == req.EventDate {
		return nil, nil
	}
	endDate, err := domain.ParseDate(*req.EventEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &endDate, nil
}
