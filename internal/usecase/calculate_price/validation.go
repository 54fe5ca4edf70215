package calculate_price

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// validateRequest проверяет только то, что нельзя деградировать до нулевой цены
// Некорректные дата и время не являются ошибкой: калькулятор посчитает 0 часов
func validateRequest(req *Request, allowFullDayWrap bool) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.DisplayCurrency != nil && strings.TrimSpace(*req.DisplayCurrency) == "" {
		return fmt.Errorf("%w: displayCurrency must not be blank", ErrInvalidInput)
	}

	if !allowFullDayWrap && (req.EventEndDate == nil || *req.EventEndDate == "" || *req.EventEndDate == req.EventDate) {
		// Нераспознанный интервал не ошибка, калькулятор вернет нулевую цену
		interval, err := domain.ResolveSlot(req.EventDate, req.EventEndDate, req.StartTime, req.EndTime)
		if err == nil && interval.IsFullDayWrap() {
			return ErrFullDayWrapNotAllowed
		}
	}

	return nil
}
