package discount

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// DiscountRepository интерфейс репозитория кодов скидок
type DiscountRepository interface {
	FindActive(ctx context.Context, code string, venueID int64) (*domain.DiscountCode, error)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder метрики проверки кодов
type MetricsRecorder interface {
	ObserveDiscountValidation(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
