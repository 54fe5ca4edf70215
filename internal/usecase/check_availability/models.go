package check_availability

import "github.com/m04kA/SMC-VenueBooking/internal/domain"

// Reason причина результата проверки
type Reason string

const (
	ReasonAvailable        Reason = "available"
	ReasonConflictBooking  Reason = "conflict_booking"
	ReasonConflictBlackout Reason = "conflict_blackout"
	ReasonCheckFailed      Reason = "check_failed"
	ReasonInvalidInput     Reason = "invalid_input"
)

// Request модель запроса проверки доступности
// Значения приходят строками как есть: разбор входит в проверку
type Request struct {
	VenueID      int64
	EventDate    string  // YYYY-MM-DD
	EventEndDate *string // YYYY-MM-DD, для многодневных событий
	StartTime    string  // HH:MM
	EndTime      string  // HH:MM
}

// Response результат проверки
// Available == true только если проверка завершилась и пересечений не найдено
type Response struct {
	VenueID   int64
	Available bool
	Reason    Reason
	Interval  *domain.Interval
	Conflict  *domain.Conflict
}
