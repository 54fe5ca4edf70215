package calculate_price

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/currency"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// PricingRuleRepository интерфейс репозитория правил ценообразования
type PricingRuleRepository interface {
	ListActiveByVenue(ctx context.Context, venueID int64) ([]*domain.PricingRule, error)
}

// PriceCalculator калькулятор стоимости
type PriceCalculator interface {
	CalculatePrice(ctx context.Context, venue *domain.Venue, rules []*domain.PricingRule, in pricing.PriceInput) *domain.PriceBreakdown
}

// CurrencyConverter конвертер валют
type CurrencyConverter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) currency.Conversion
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
