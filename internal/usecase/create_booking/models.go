package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64   // ID пользователя
	VenueID      int64   // ID площадки
	EventDate    string  // Дата события YYYY-MM-DD
	EventEndDate *string // Дата окончания для многодневных событий (опционально)
	StartTime    string  // Время начала HH:MM
	EndTime      string  // Время окончания HH:MM (раньше начала - переход через полночь)
	Guests       int     // Количество гостей
	DiscountCode *string // Код скидки (опционально)
	Notes        *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием и расчетом стоимости
type Response struct {
	Booking   *domain.Booking
	Interval  domain.Interval
	Breakdown *domain.PriceBreakdown
	CreatedAt time.Time
}
