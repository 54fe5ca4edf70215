package convert_currency

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/service/currency"
)

type CurrencyConverter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) currency.Conversion
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
