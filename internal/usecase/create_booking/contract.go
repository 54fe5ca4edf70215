package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListByVenue(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlackoutRepository интерфейс репозитория блокировок площадки
type BlackoutRepository interface {
	ListByVenue(ctx context.Context, venueID int64, from, to *time.Time) ([]*domain.Blackout, error)
}

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

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
