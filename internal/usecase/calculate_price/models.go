package calculate_price

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Request модель запроса расчета стоимости
type Request struct {
	VenueID         int64
	EventDate       string
	EventEndDate    *string
	StartTime       string
	EndTime         string
	DiscountCode    *string
	DisplayCurrency *string // валюта для отображения итога (опционально)
}

// DisplayPrice итог, пересчитанный в валюту отображения
type DisplayPrice struct {
	Currency   string
	Subtotal   decimal.Decimal
	FinalPrice decimal.Decimal
	RateFound  bool
}

// Response модель ответа
type Response struct {
	VenueID   int64
	Breakdown *domain.PriceBreakdown
	Display   *DisplayPrice
}
