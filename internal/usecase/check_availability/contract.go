package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByVenue(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlackoutRepository интерфейс репозитория блокировок площадки
type BlackoutRepository interface {
	ListByVenue(ctx context.Context, venueID int64, from, to *time.Time) ([]*domain.Blackout, error)
}

// MetricsRecorder метрики проверки доступности
type MetricsRecorder interface {
	ObserveAvailabilityCheck(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
