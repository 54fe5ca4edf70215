package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// DiscountValidator проверка кода скидки
type DiscountValidator interface {
	Validate(ctx context.Context, code string, venueID int64, subtotal decimal.Decimal) *domain.DiscountResult
}

// MetricsRecorder метрики расчета цены
type MetricsRecorder interface {
	ObservePriceQuote(ruleApplied bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
